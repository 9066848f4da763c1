package models

import "time"

// MaxActiveBookings is the number of simultaneous bookings a non-admin
// user may hold. Cancelling (deleting) a booking frees the slot.
const MaxActiveBookings = 3

// Booking is the stored record. References are ids only; read paths
// return BookingDetail with the provider (and for admins, the user)
// resolved.
type Booking struct {
	ID          string    `json:"id"`
	BookingDate time.Time `json:"bookingDate"`
	UserID      string    `json:"user"`
	ProviderID  string    `json:"provider"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingDetail is a booking with its references resolved. Provider is
// nil when the referenced provider has been deleted; UserInfo is only
// filled for admin listings.
type BookingDetail struct {
	ID          string           `json:"id"`
	BookingDate time.Time        `json:"bookingDate"`
	UserID      string           `json:"user"`
	UserInfo    *UserSummary     `json:"userInfo,omitempty"`
	Provider    *ProviderSummary `json:"provider"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
