package schema

// RefWineColorTable represents the 'ref.winecolor' reference table
type RefWineColorTable struct {
	Table string
	ID    string
	Name  string
}

// RefWineColor is the schema definition for ref.winecolor
var RefWineColor = RefWineColorTable{
	Table: "ref.winecolor",
	ID:    "id",
	Name:  "name",
}

// RefWineColorTranslationTable represents the 'ref.winecolortranslation' table
type RefWineColorTranslationTable struct {
	Table    string
	ColorID  string
	Language string
	Label    string
}

// RefWineColorTranslation is the schema definition for ref.winecolortranslation
var RefWineColorTranslation = RefWineColorTranslationTable{
	Table:    "ref.winecolortranslation",
	ColorID:  "colorid",
	Language: "language",
	Label:    "label",
}
