package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Booking links a user, a package and a travel date. TotalAmountPaisa is copied
// from the package price at submission time and never recalculated afterwards.
type Booking struct {
	ID               string
	UserID           string
	PackageID        string
	TravelDate       time.Time
	TotalAmountPaisa int64
	Status           BookingStatus
	PaymentStatus    PaymentStatus
	PaymentMethod    string
	PaymentReference string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BookingDetails is a booking joined with package and customer info for the
// operator view.
type BookingDetails struct {
	Booking
	PackageTitle    string
	PackageLocation string
	CustomerName    string
	CustomerEmail   string
}
