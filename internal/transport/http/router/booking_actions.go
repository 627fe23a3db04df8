package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starhaven/internal/domain"
	httpez "starhaven/internal/transport/http/ez"
)

func mountBookingActions(authed *gin.RouterGroup, d Deps) {
	ez := httpez.New(authed)

	type createIn struct {
		GroupName string   `json:"groupName"`
		GroupType string   `json:"groupType"`
		GroupSize int      `json:"groupSize"`
		Interests []string `json:"interests"`
		OtherInfo string   `json:"otherInfo"`
		Date      string   `json:"date"`
	}
	httpez.RegisterAction[createIn, *domain.Booking](ez, httpez.Action[createIn, *domain.Booking]{
		Method: http.MethodPost,
		Path:   "/bookings",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *createIn) (*domain.Booking, error) {
			// required-field validation is the controller's contract
			return d.Booking.CreateBooking(domain.Booking{
				UserID:    c.GetString("userId"),
				Role:      c.GetString("role"),
				GroupName: in.GroupName,
				GroupType: in.GroupType,
				GroupSize: in.GroupSize,
				Interests: in.Interests,
				OtherInfo: in.OtherInfo,
				Date:      in.Date,
			})
		},
	})

	httpez.RegisterAction[struct{}, []domain.Booking](ez, httpez.Action[struct{}, []domain.Booking]{
		Method: http.MethodGet,
		Path:   "/bookings",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Booking, error) {
			return d.Booking.GetBookingsByUserID(c.GetString("userId"))
		},
	})

	type rangeQ struct {
		Start string `form:"start" binding:"required"`
		End   string `form:"end"   binding:"required"`
	}
	httpez.RegisterAction[rangeQ, []string](ez, httpez.Action[rangeQ, []string]{
		Method: http.MethodGet,
		Path:   "/bookings/available-dates",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *rangeQ) ([]string, error) {
			return d.Booking.GetAvailableDates(in.Start, in.End)
		},
	})

	httpez.RegisterAction[struct{}, *domain.Booking](ez, httpez.Action[struct{}, *domain.Booking]{
		Method: http.MethodGet,
		Path:   "/bookings/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Booking, error) {
			b, err := ownBooking(c, d)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
	})

	httpez.RegisterAction[domain.BookingPatch, *domain.Booking](ez, httpez.Action[domain.BookingPatch, *domain.Booking]{
		Method: http.MethodPut,
		Path:   "/bookings/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *domain.BookingPatch) (*domain.Booking, error) {
			if _, err := ownBooking(c, d); err != nil {
				return nil, err
			}
			in.Status = nil // members change status through cancellation only
			b, err := d.Booking.UpdateBooking(c.Param("id"), *in)
			if err != nil {
				return nil, err
			}
			if b == nil {
				return nil, httpez.NotFound("booking not found")
			}
			return b, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.Booking](ez, httpez.Action[struct{}, *domain.Booking]{
		Method: http.MethodPost,
		Path:   "/bookings/:id/cancel",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Booking, error) {
			if _, err := ownBooking(c, d); err != nil {
				return nil, err
			}
			b, err := d.Booking.UpdateBookingStatus(c.Param("id"), domain.BookingStatusCancelled)
			if err != nil {
				return nil, err
			}
			if b == nil {
				return nil, httpez.NotFound("booking not found")
			}
			return b, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.Booking](ez, httpez.Action[struct{}, *domain.Booking]{
		Method: http.MethodDelete,
		Path:   "/bookings/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Booking, error) {
			if _, err := ownBooking(c, d); err != nil {
				return nil, err
			}
			return d.Booking.DeleteBooking(c.Param("id"))
		},
	})
}

// ownBooking loads :id and rejects callers who neither own it nor hold
// the admin role.
func ownBooking(c *gin.Context, d Deps) (*domain.Booking, error) {
	b, err := d.Booking.GetBookingByID(c.Param("id"))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, httpez.NotFound("booking not found")
	}
	if b.UserID != c.GetString("userId") && c.GetString("role") != domain.RoleAdmin {
		return nil, httpez.Forbidden("not your booking")
	}
	return b, nil
}
