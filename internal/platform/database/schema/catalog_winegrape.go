package schema

// WineGrapeTable represents the 'catalog.winegrape' junction table
type WineGrapeTable struct {
	Table     string
	WineID    string
	GrapeName string
}

// WineGrape is the schema definition for catalog.winegrape
var WineGrape = WineGrapeTable{
	Table:     "catalog.winegrape",
	WineID:    "wineid",
	GrapeName: "grapename",
}
