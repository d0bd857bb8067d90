// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

/*
Package match records swipe results and selects the wines a user has not
rated yet.

A match row exists for every swipe, like or pass — both count as rated.
The unrated selection subtracts the rated set from a filtered listing and
degrades to the plain listing when the rated set cannot be loaded: a fresh
deck with a few seen wines beats an empty screen.
*/
package match

import "time"

// Match is one user's swipe result for one wine.
type Match struct {
	UserID    string    `json:"-"`
	WineID    int64     `json:"-"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
