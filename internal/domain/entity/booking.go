package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Duration bounds for a single training session, in hours.
const (
	MinDurationHours = 0.5
	MaxDurationHours = 24.0
)

// PaymentStatus represents the payment state attached to a booking
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentConfirmation is the record handed to the core by the caller when an
// admin approves a booking. The core never talks to a payment gateway itself.
type PaymentConfirmation struct {
	Mode          string          `json:"mode"`
	TransactionID string          `json:"transaction_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
}

// Validate checks the confirmation is complete enough to persist.
func (p *PaymentConfirmation) Validate() error {
	if p == nil {
		return errors.New("payment confirmation is required")
	}
	if p.Mode == "" {
		return errors.New("payment mode is required")
	}
	if p.TransactionID == "" {
		return errors.New("payment transaction id is required")
	}
	if p.Type == "" {
		return errors.New("payment type is required")
	}
	if p.Amount.IsNegative() {
		return errors.New("payment amount must not be negative")
	}
	return nil
}

// Value returns json value, implement driver.Valuer interface
func (p PaymentConfirmation) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan scan value into PaymentConfirmation, implements sql.Scanner interface
func (p *PaymentConfirmation) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, p)
}

// Booking represents a company's request for a training session with a
// trainer. CompanyID and TrainerID are immutable after creation; Status only
// moves along the transition table in booking_status.go.
type Booking struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	TrainerID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_bookings_trainer_date" json:"trainer_id"`
	BookingDate   time.Time  `gorm:"type:date;not null;index:idx_bookings_trainer_date" json:"booking_date"`
	StartTime     string     `gorm:"type:time;not null" json:"start_time"`
	DurationHours float64    `gorm:"type:numeric(4,2);not null" json:"duration_hours"`
	TrainingTypes StringList `gorm:"type:jsonb;not null" json:"training_types"`

	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending_approval';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`

	// Write-once approval fields, set atomically by the approve transition.
	IsApprovedByAdmin   bool                 `gorm:"not null;default:false;index" json:"is_approved_by_admin"`
	ApprovedByAdminID   *uuid.UUID           `gorm:"type:uuid" json:"approved_by_admin_id,omitempty"`
	ApprovedAt          *time.Time           `json:"approved_at,omitempty"`
	PaymentConfirmation *PaymentConfirmation `gorm:"type:jsonb" json:"payment_confirmation,omitempty"`

	AdminNotes     string `gorm:"type:varchar(1000)" json:"admin_notes,omitempty"`
	RequesterNotes string `gorm:"type:varchar(1000)" json:"requester_notes,omitempty"`
	TrainerNotes   string `gorm:"type:varchar(1000)" json:"trainer_notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Company CompanyProfile `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Trainer TrainerProfile `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// OccupiesSlot reports whether the booking still holds its trainer time slot.
func (b *Booking) OccupiesSlot() bool {
	return !b.Status.IsTerminal()
}

// StartMinutes returns the start time as minutes since midnight.
func (b *Booking) StartMinutes() (int, error) {
	return ParseClockMinutes(b.StartTime)
}

// DurationMinutes returns the session length in minutes.
func (b *Booking) DurationMinutes() int {
	return int(b.DurationHours * 60)
}

// ParseClockMinutes parses a wall-clock time into minutes since midnight.
// Requests arrive as HH:MM; rows read back from the TIME column carry
// seconds, so HH:MM:SS is accepted too.
func ParseClockMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		t, err = time.Parse("15:04:05", clock)
		if err != nil {
			return 0, err
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClockMinutes renders minutes since midnight as an HH:MM wall-clock
// time, wrapping past-midnight values back into a single day. Display only;
// conflict checks work in the unwrapped minute space.
func FormatClockMinutes(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
