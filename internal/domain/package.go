package domain

import "time"

// Package is a purchasable trip offering. Immutable from the booking flow's
// perspective; PricePaisa is the price in integer minor units.
type Package struct {
	ID          string
	Title       string
	Location    string
	Description string
	PricePaisa  int64
	Duration    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
