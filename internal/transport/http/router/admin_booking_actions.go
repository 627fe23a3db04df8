package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"starhaven/internal/domain"
	httpez "starhaven/internal/transport/http/ez"
)

func mountAdminBookingActions(admin *gin.RouterGroup, d Deps) {
	ez := httpez.New(admin)

	adminOnly := []string{domain.RoleAdmin}

	type listQ struct {
		Status string `form:"status"`
		Date   string `form:"date"`
		UserID string `form:"userId"`
	}
	httpez.RegisterAction[listQ, []domain.Booking](ez, httpez.Action[listQ, []domain.Booking]{
		Method: http.MethodGet,
		Path:   "/bookings",
		Binder: httpez.BindQuery,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Booking, error) {
			switch {
			case in.Status != "":
				return d.Booking.GetBookingsByStatus(in.Status)
			case in.Date != "":
				return d.Booking.GetBookingsByDate(in.Date)
			case in.UserID != "":
				return d.Booking.GetBookingsByUserID(in.UserID)
			}
			return d.Booking.GetAllBookings()
		},
	})

	httpez.RegisterAction[struct{}, *domain.Booking](ez, httpez.Action[struct{}, *domain.Booking]{
		Method: http.MethodGet,
		Path:   "/bookings/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Booking, error) {
			b, err := d.Booking.GetBookingByID(c.Param("id"))
			if err != nil {
				return nil, err
			}
			if b == nil {
				return nil, httpez.NotFound("booking not found")
			}
			return b, nil
		},
	})

	httpez.RegisterAction[domain.BookingPatch, *domain.Booking](ez, httpez.Action[domain.BookingPatch, *domain.Booking]{
		Method: http.MethodPut,
		Path:   "/bookings/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, in *domain.BookingPatch) (*domain.Booking, error) {
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

	type statusIn struct {
		Status string `json:"status" binding:"required"`
	}
	httpez.RegisterAction[statusIn, *domain.Booking](ez, httpez.Action[statusIn, *domain.Booking]{
		Method: http.MethodPost,
		Path:   "/bookings/:id/status",
		Binder: httpez.BindJSON,
		Auth:   true,
		Roles:  adminOnly,
		Handler: func(c *gin.Context, in *statusIn) (*domain.Booking, error) {
			b, err := d.Booking.UpdateBookingStatus(c.Param("id"), in.Status)
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
		Roles:  adminOnly,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Booking, error) {
			b, err := d.Booking.DeleteBooking(c.Param("id"))
			if err != nil {
				return nil, err
			}
			if b == nil {
				return nil, httpez.NotFound("booking not found")
			}
			return b, nil
		},
	})
}
