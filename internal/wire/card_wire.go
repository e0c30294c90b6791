package wire

import (
	"wonder-rides/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCard mounts the punch-card routes. The caller has already
// applied staff auth.
func wireCard(r chi.Router, cardHandler *adaptor.CardHandler) {
	r.Route("/cards", func(r chi.Router) {
		// GET /api/admin/cards?query= - Search by code or phone
		r.Get("/", cardHandler.SearchCards)

		// POST /api/admin/cards - Issue a new card
		r.Post("/", cardHandler.IssueCard)

		// POST /api/admin/cards/redeem - Punch one use off a card
		r.Post("/redeem", cardHandler.RedeemCard)

		// GET /api/admin/cards/history?target_id= - Ledger entries for one card
		r.Get("/history", cardHandler.CardHistory)
	})
}
