package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Booking status values. ReservedUntil is only meaningful while the
// booking is pending; settlement and cancellation clear it.
const (
	StatusPending     = "pending"
	StatusDownpayment = "downpayment"
	StatusPaid        = "paid"
	StatusCancelled   = "cancelled"
	StatusFailed      = "failed"
)

const (
	PaymentStatusPaid   = "paid"
	PaymentStatusFailed = "failed"
)

const (
	ProofReviewNone     = "none"
	ProofReviewPending  = "pending"
	ProofReviewApproved = "approved"
	ProofReviewRejected = "rejected"
)

type Booking struct {
	ID                    uuid.UUID      `db:"id"`
	ReferenceNumber       string         `db:"reference_number"`
	UserID                int64          `db:"user_id"`
	GuestName             string         `db:"guest_name"`
	GuestEmail            string         `db:"guest_email"`
	GuestPhone            string         `db:"guest_phone"`
	RoomTypeID            int64          `db:"room_type_id"`
	TotalRooms            int            `db:"total_rooms"`
	Adults                int            `db:"adults"`
	Children              int            `db:"children"`
	CheckInDate           time.Time      `db:"check_in_date"`
	CheckOutDate          time.Time      `db:"check_out_date"`
	Subtotal              float64        `db:"subtotal"`
	Discount              float64        `db:"discount"`
	MealCost              float64        `db:"meal_cost"`
	FinalPrice            float64        `db:"final_price"`
	Status                string         `db:"status"`
	ReservedUntil         sql.NullTime   `db:"reserved_until"`
	FailedPaymentAttempts int            `db:"failed_payment_attempts"`
	CancellationReason    sql.NullString `db:"cancellation_reason"`
	CancelledBy           sql.NullString `db:"cancelled_by"`
	CancelledAt           sql.NullTime   `db:"cancelled_at"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             sql.NullTime   `db:"updated_at"`
	DeletedAt             sql.NullTime   `db:"deleted_at"`
}

// Payable reports whether settlement may still run for this booking.
func (b Booking) Payable() bool {
	return b.Status == StatusPending
}

// Terminal reports whether the booking reached a state that can no
// longer transition.
func (b Booking) Terminal() bool {
	return b.Status == StatusPaid || b.Status == StatusCancelled || b.Status == StatusFailed
}

type Payment struct {
	ID                int64          `db:"id"`
	BookingID         uuid.UUID      `db:"booking_id"`
	Provider          string         `db:"provider"`
	Status            string         `db:"status"`
	Amount            float64        `db:"amount"`
	Currency          string         `db:"currency"`
	ErrorCode         sql.NullString `db:"error_code"`
	ErrorMessage      sql.NullString `db:"error_message"`
	ProofUploadCount  int            `db:"proof_upload_count"`
	ProofReviewStatus string         `db:"proof_review_status"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         sql.NullTime   `db:"updated_at"`
	DeletedAt         sql.NullTime   `db:"deleted_at"`
}

type RoomType struct {
	ID         int64        `db:"id"`
	Name       string       `db:"name"`
	TotalUnits int          `db:"total_units"`
	BasePrice  float64      `db:"base_price"`
	MealPrice  float64      `db:"meal_price"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  sql.NullTime `db:"updated_at"`
}

type Promo struct {
	ID              int64     `db:"id"`
	Code            string    `db:"code"`
	DiscountPercent float64   `db:"discount_percent"`
	ValidFrom       time.Time `db:"valid_from"`
	ValidUntil      time.Time `db:"valid_until"`
	Active          bool      `db:"active"`
}
