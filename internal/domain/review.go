package domain

import "time"

type Review struct {
	ID         string
	UserID     string
	PackageID  string
	Rating     int
	Comment    string
	AuthorName string
	CreatedAt  time.Time
}
