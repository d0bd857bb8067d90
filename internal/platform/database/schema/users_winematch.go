package schema

// WineMatchTable represents the 'users.winematch' table
//
// One row per (user, wine) swipe result. Liked distinguishes a like from a
// pass; either way the wine counts as rated for the unrated-wine selection.
type WineMatchTable struct {
	Table     string
	UserID    string
	WineID    string
	Liked     string
	CreatedAt string
	UpdatedAt string
}

// WineMatch is the schema definition for users.winematch
var WineMatch = WineMatchTable{
	Table:     "users.winematch",
	UserID:    "userid",
	WineID:    "wineid",
	Liked:     "liked",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
