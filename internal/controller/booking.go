package controller

import (
	"starhaven/internal/domain"
)

// Booking validates reservation payloads and status transitions and
// derives availability views over the booking calendar.
type Booking struct {
	store domain.BookingStore
}

func NewBooking(store domain.BookingStore) *Booking {
	return &Booking{store: store}
}

func (c *Booking) GetAllBookings() ([]domain.Booking, error) {
	out, err := c.store.All()
	if err != nil {
		return nil, opFailed("get all bookings", err)
	}
	return out, nil
}

func (c *Booking) GetBookingByID(id string) (*domain.Booking, error) {
	b, err := c.store.FindByID(id)
	if err != nil {
		return nil, opFailed("get booking", err)
	}
	return b, nil
}

func (c *Booking) GetBookingsByUserID(userID string) ([]domain.Booking, error) {
	out, err := c.store.FindByUserID(userID)
	if err != nil {
		return nil, opFailed("get bookings by user", err)
	}
	return out, nil
}

func (c *Booking) GetBookingsByDate(date string) ([]domain.Booking, error) {
	out, err := c.store.FindByDate(date)
	if err != nil {
		return nil, opFailed("get bookings by date", err)
	}
	return out, nil
}

func (c *Booking) GetBookingsByStatus(status string) ([]domain.Booking, error) {
	out, err := c.store.FindByStatus(status)
	if err != nil {
		return nil, opFailed("get bookings by status", err)
	}
	return out, nil
}

// CreateBooking persists the payload as-is, apart from the
// store-assigned id and timestamps. Status defaults to pending.
func (c *Booking) CreateBooking(b domain.Booking) (*domain.Booking, error) {
	const op = "create booking"
	if b.UserID == "" || b.GroupName == "" || b.GroupType == "" || b.GroupSize <= 0 || b.Date == "" {
		return nil, invalid(op, "Missing required booking fields")
	}
	if b.Status == "" {
		b.Status = domain.BookingStatusPending
	}
	if err := c.store.Create(&b); err != nil {
		return nil, opFailed(op, err)
	}
	return &b, nil
}

// UpdateBooking merges the patch into the record. Returns nil when the
// id does not exist.
func (c *Booking) UpdateBooking(id string, patch domain.BookingPatch) (*domain.Booking, error) {
	return c.update("update booking", id, patch)
}

// UpdateBookingStatus validates the status against the enum, then goes
// through the same update path as UpdateBooking.
func (c *Booking) UpdateBookingStatus(id, status string) (*domain.Booking, error) {
	if !validBookingStatus(status) {
		return nil, invalid("update booking status",
			"Invalid status. Must be pending, confirmed, cancelled, or completed")
	}
	b, err := c.update("update booking status", id, domain.BookingPatch{Status: &status})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Booking) update(op, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	fields := map[string]any{}
	if patch.Role != nil {
		fields["role"] = *patch.Role
	}
	if patch.GroupName != nil {
		fields["group_name"] = *patch.GroupName
	}
	if patch.GroupType != nil {
		fields["group_type"] = *patch.GroupType
	}
	if patch.GroupSize != nil {
		fields["group_size"] = *patch.GroupSize
	}
	if patch.Interests != nil {
		fields["interests"] = domain.StringList(*patch.Interests)
	}
	if patch.OtherInfo != nil {
		fields["other_info"] = *patch.OtherInfo
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	b, err := c.store.Update(id, fields)
	if err != nil {
		return nil, opFailed(op, err)
	}
	return b, nil
}

func (c *Booking) DeleteBooking(id string) (*domain.Booking, error) {
	b, err := c.store.Delete(id)
	if err != nil {
		return nil, opFailed("delete booking", err)
	}
	return b, nil
}

// GetAvailableDates returns the distinct booking dates falling inside
// [startDate, endDate], in first-seen order. YYYY-MM-DD compares
// lexicographically in date order, so plain string comparison is used;
// malformed dates degrade to string comparison rather than erroring.
// Dates are taken from bookings of every status.
func (c *Booking) GetAvailableDates(startDate, endDate string) ([]string, error) {
	bookings, err := c.store.All()
	if err != nil {
		return nil, opFailed("get available dates", err)
	}
	seen := make(map[string]struct{}, len(bookings))
	dates := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if b.Date < startDate || b.Date > endDate {
			continue
		}
		if _, ok := seen[b.Date]; ok {
			continue
		}
		seen[b.Date] = struct{}{}
		dates = append(dates, b.Date)
	}
	return dates, nil
}

func validBookingStatus(s string) bool {
	switch s {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed,
		domain.BookingStatusCancelled, domain.BookingStatusCompleted:
		return true
	}
	return false
}
