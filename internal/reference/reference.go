/*
Package reference manages the canonical reference data of the Vinera catalogue.

It bridges user-visible, localized labels and the canonical backend keys the
wine view stores, for the dimensions whose filter values arrive as display
text: wine color and wine type.

# Core Responsibility

  - Canonicalization: Resolves a label typed or stored in any supported
    language back to its canonical key ("Rot" → "red").
  - Option Lists: Supplies the localized labels the filter menus display.
  - Lifecycle: Loads both dimensions once per process and serves lookups
    from an immutable in-memory index afterwards.

The resolver is constructed once by the composition root and passed by
reference to whatever needs lookups; there is no hidden global instance.
*/
package reference

// # Dimensions

// Dimension identifies a canonicalized reference dimension.
type Dimension string

const (
	// DimensionColor is the wine color dimension (red, white, rosé, ...).
	DimensionColor Dimension = "color"

	// DimensionWineType is the wine type dimension (still, sparkling, fortified, ...).
	DimensionWineType Dimension = "winetype"
)

// IsValid reports whether d is a recognised [Dimension] value.
func (d Dimension) IsValid() bool {
	switch d {
	case DimensionColor, DimensionWineType:
		return true
	}
	return false
}

// # Entries

// Entry is one canonical reference value together with its translations.
//
// CanonicalName is the key stored in the wine view's characteristic columns;
// Translations maps a normalized language code to the display label. Entries
// are read-only after the resolver finishes loading; two entries of one
// dimension never share a canonical name.
type Entry struct {
	CanonicalName string            `json:"canonical_name"`
	Translations  map[string]string `json:"translations"`
}

// Label returns the display label for the requested language, falling back
// to the canonical name when no translation exists.
func (e *Entry) Label(language string) string {
	if label, ok := e.Translations[language]; ok && label != "" {
		return label
	}
	return e.CanonicalName
}
