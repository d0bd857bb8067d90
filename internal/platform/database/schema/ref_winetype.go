package schema

// RefWineTypeTable represents the 'ref.winetype' reference table
type RefWineTypeTable struct {
	Table string
	ID    string
	Name  string
}

// RefWineType is the schema definition for ref.winetype
var RefWineType = RefWineTypeTable{
	Table: "ref.winetype",
	ID:    "id",
	Name:  "name",
}

// RefWineTypeTranslationTable represents the 'ref.winetypetranslation' table
type RefWineTypeTranslationTable struct {
	Table    string
	TypeID   string
	Language string
	Label    string
}

// RefWineTypeTranslation is the schema definition for ref.winetypetranslation
var RefWineTypeTranslation = RefWineTypeTranslationTable{
	Table:    "ref.winetypetranslation",
	TypeID:   "typeid",
	Language: "language",
	Label:    "label",
}
