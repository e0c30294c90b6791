package wire

import (
	"wonder-rides/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAnnouncement(r chi.Router, announcementHandler *adaptor.AnnouncementHandler) {
	r.Route("/announcement", func(r chi.Router) {
		// GET /api/admin/announcement - Latest version plus history
		r.Get("/", announcementHandler.GetAnnouncement)

		// POST /api/admin/announcement - Set message and visibility
		r.Post("/", announcementHandler.SetAnnouncement)

		// DELETE /api/admin/announcement - Remove one version
		r.Delete("/", announcementHandler.DeleteAnnouncement)
	})
}
