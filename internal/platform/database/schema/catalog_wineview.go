package schema

// CatalogWineViewTable represents the pre-joined 'catalog.wineview' view.
//
// The view denormalizes one sellable wine per row: localized auxiliary names
// and per-characteristic translation maps are embedded as JSONB so a listing
// never needs per-row follow-up queries.
type CatalogWineViewTable struct {
	Table string

	ID          string
	ExternalRef string
	Name        string
	Year        string

	RegionID          string
	RegionNames       string
	RegionDefaultName string
	CountryCode       string

	WineType        string
	WineTypeLabels  string
	Color           string
	ColorLabels     string
	Sweetness       string
	SweetnessLabels string
	AlcoholLevel    string
	AlcoholLabels   string
	ProductionType  string
	ProductionTypeLabels string
	PriceRange      string
	PriceRangeLabels string

	AlcoholMin string
	AlcoholMax string
	PriceMin   string
	PriceMax   string
	UnitVolume string
}

// CatalogWineView is the schema definition for catalog.wineview
var CatalogWineView = CatalogWineViewTable{
	Table: "catalog.wineview",

	ID:          "id",
	ExternalRef: "externalref",
	Name:        "name",
	Year:        "year",

	RegionID:          "regionid",
	RegionNames:       "regionnames",
	RegionDefaultName: "regiondefaultname",
	CountryCode:       "countrycode",

	WineType:             "winetype",
	WineTypeLabels:       "winetypelabels",
	Color:                "winecolor",
	ColorLabels:          "winecolorlabels",
	Sweetness:            "sweetness",
	SweetnessLabels:      "sweetnesslabels",
	AlcoholLevel:         "alcohollevel",
	AlcoholLabels:        "alcohollabels",
	ProductionType:       "productiontype",
	ProductionTypeLabels: "productiontypelabels",
	PriceRange:           "pricerange",
	PriceRangeLabels:     "pricerangelabels",

	AlcoholMin: "alcoholmin",
	AlcoholMax: "alcoholmax",
	PriceMin:   "pricemin",
	PriceMax:   "pricemax",
	UnitVolume: "unitvolume",
}

func (t CatalogWineViewTable) Columns() []string {
	return []string{
		t.ID, t.ExternalRef, t.Name, t.Year,
		t.RegionID, t.RegionNames, t.RegionDefaultName, t.CountryCode,
		t.WineType, t.WineTypeLabels, t.Color, t.ColorLabels,
		t.Sweetness, t.SweetnessLabels, t.AlcoholLevel, t.AlcoholLabels,
		t.ProductionType, t.ProductionTypeLabels, t.PriceRange, t.PriceRangeLabels,
		t.AlcoholMin, t.AlcoholMax, t.PriceMin, t.PriceMax, t.UnitVolume,
	}
}
