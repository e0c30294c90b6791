package wire

import (
	"wonder-rides/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/bookings", func(r chi.Router) {
		// GET /api/admin/bookings?start=&end= - Calendar range
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/admin/bookings - Create a booking (conflict-checked)
		r.Post("/", bookingHandler.CreateBooking)

		// DELETE /api/admin/bookings/{id} - Cancel a booking
		r.Delete("/{id}", bookingHandler.CancelBooking)
	})
}
