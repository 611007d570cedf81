package entity

import "github.com/google/uuid"

// BookingFilter is a domain-level filter for querying bookings.
// Used by repository layer to avoid coupling with delivery DTOs.
type BookingFilter struct {
	Status    BookingStatus
	TrainerID uuid.UUID
	CompanyID uuid.UUID
	DateFrom  string // Format: YYYY-MM-DD
	DateTo    string // Format: YYYY-MM-DD

	// ApprovedOnly restricts results to admin-approved bookings. The trainer
	// view always sets this; trainers never see the pre-approval backlog.
	ApprovedOnly bool

	Page      int
	Limit     int
	SortBy    string // booking_date | start_time | status | created_at
	SortOrder string // asc | desc
}

// Normalize applies pagination and sort defaults in place.
func (f *BookingFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	switch f.SortBy {
	case "booking_date", "start_time", "status", "created_at":
	default:
		f.SortBy = "created_at"
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
}

// Offset returns the row offset for the current page.
func (f *BookingFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
