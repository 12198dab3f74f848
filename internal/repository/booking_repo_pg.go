package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zvrva/tourbooking/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	CancelPendingBefore(ctx context.Context, travelDate time.Time) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, package_id, travel_date, total_amount_paisa, status, payment_status, payment_method, payment_reference, created_at, updated_at`

func scanBooking(row pgx.Row, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.UserID, &b.PackageID, &b.TravelDate, &b.TotalAmountPaisa, &b.Status, &b.PaymentStatus, &b.PaymentMethod, &b.PaymentReference, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (user_id, package_id, travel_date, total_amount_paisa, status, payment_status, payment_method, payment_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		booking.UserID, booking.PackageID, booking.TravelDate, booking.TotalAmountPaisa,
		booking.Status, booking.PaymentStatus, booking.PaymentMethod, booking.PaymentReference).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) ListAll(ctx context.Context) ([]domain.BookingDetails, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.user_id, b.package_id, b.travel_date, b.total_amount_paisa, b.status, b.payment_status, b.payment_method, b.payment_reference, b.created_at, b.updated_at,
			p.title, p.location, pr.name, pr.email
		FROM bookings b
		JOIN packages p ON p.id = b.package_id
		JOIN profiles pr ON pr.id = b.user_id
		ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingDetails, 0)
	for rows.Next() {
		var d domain.BookingDetails
		if err := rows.Scan(&d.ID, &d.UserID, &d.PackageID, &d.TravelDate, &d.TotalAmountPaisa, &d.Status, &d.PaymentStatus, &d.PaymentMethod, &d.PaymentReference, &d.CreatedAt, &d.UpdatedAt,
			&d.PackageTitle, &d.PackageLocation, &d.CustomerName, &d.CustomerEmail); err != nil {
			return nil, err
		}
		bookings = append(bookings, d)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns, status, id)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) CancelPendingBefore(ctx context.Context, travelDate time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE status=$2 AND travel_date < $3 RETURNING `+bookingColumns,
		domain.BookingStatusCancelled, domain.BookingStatusPending, travelDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cancelled []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		cancelled = append(cancelled, b)
	}
	return cancelled, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
