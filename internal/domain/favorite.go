package domain

import "time"

type Favorite struct {
	ID        string
	UserID    string
	PackageID string
	CreatedAt time.Time
}
