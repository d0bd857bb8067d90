package schema

// WineProducerTable represents the 'catalog.wineproducer' junction table
type WineProducerTable struct {
	Table        string
	WineID       string
	ProducerID   string
	ProducerName string
}

// WineProducer is the schema definition for catalog.wineproducer
var WineProducer = WineProducerTable{
	Table:        "catalog.wineproducer",
	WineID:       "wineid",
	ProducerID:   "producerid",
	ProducerName: "producername",
}
