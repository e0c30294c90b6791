package wire

import (
	"wonder-rides/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePublic(r chi.Router, publicHandler *adaptor.PublicHandler) {
	// POST /api/contact - Contact form submission (captcha-gated)
	r.Post("/api/contact", publicHandler.SubmitContact)

	// POST /api/waiver - Waiver form submission (bot heuristics)
	r.Post("/api/waiver", publicHandler.SubmitWaiver)

	// GET /api/announcement - Current site banner, if one is live
	r.Get("/api/announcement", publicHandler.GetAnnouncement)
}
