package wire

import (
	"wonder-rides/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireInbox mounts the staff views over public submissions: contact
// messages and signed waivers.
func wireInbox(r chi.Router, messageHandler *adaptor.MessageHandler, waiverHandler *adaptor.WaiverHandler) {
	// GET /api/admin/messages?page=&limit=&search= - Paginated inbox
	r.Get("/messages", messageHandler.ListMessages)

	// PATCH /api/admin/messages - Mark read/unread/ignored
	r.Patch("/messages", messageHandler.UpdateMessageStatus)

	r.Route("/waivers", func(r chi.Router) {
		// GET /api/admin/waivers?page=&limit=&search= - Paginated waiver list
		r.Get("/", waiverHandler.ListWaivers)

		// GET /api/admin/waivers/export - CSV download
		r.Get("/export", waiverHandler.ExportWaivers)
	})
}
