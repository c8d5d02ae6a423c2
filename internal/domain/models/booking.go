package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Booking links a user to a tour. The user reference is kept even when the
// account is later deactivated, so UserID is nullable.
type Booking struct {
	bun.BaseModel `bun:"table:bookings,alias:b"`

	ID            int64         `bun:"id,pk,autoincrement" json:"id"`
	UserID        int64         `bun:"user_id,nullzero" json:"userId"`
	User          *User         `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	TourID        int64         `bun:"tour_id,notnull" json:"tourId"`
	Tour          *Tour         `bun:"rel:belongs-to,join:tour_id=id" json:"tour,omitempty"`
	BookingDate   time.Time     `bun:"booking_date,notnull" json:"bookingDate"`
	Participants  int           `bun:"participants,notnull" json:"participants"`
	TotalPrice    float64       `bun:"total_price,notnull" json:"totalPrice"`
	Status        BookingStatus `bun:"status,notnull" json:"status"`
	PaymentMethod string        `bun:"payment_method,notnull" json:"paymentMethod"`
	PaymentStatus PaymentStatus `bun:"payment_status,notnull" json:"paymentStatus"`
	CreatedBy     string        `bun:"created_by" json:"createdBy"`
	CreatedAt     time.Time     `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	IsActive      bool          `bun:"is_active" json:"isActive"`
	RowVersion    int64         `bun:"row_version,notnull,default:0" json:"rowVersion"`
}

func (b *Booking) PrimaryKey() int64  { return b.ID }
func (b *Booking) Version() int64     { return b.RowVersion }
func (b *Booking) SetVersion(v int64) { b.RowVersion = v }
