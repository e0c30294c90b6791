package adaptor

import (
	"encoding/json"
	"net/http"

	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

type CardHandler struct {
	service usecase.CardService
	log     *zap.Logger
}

func NewCardHandler(service usecase.CardService, log *zap.Logger) *CardHandler {
	return &CardHandler{
		service: service,
		log:     log.With(zap.String("handler", "card")),
	}
}

// IssueCard handles POST /api/admin/cards (staff)
func (h *CardHandler) IssueCard(w http.ResponseWriter, r *http.Request) {
	var req request.IssueCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	operator := utils.GetOperatorNameFromContext(r.Context())

	card, err := h.service.Issue(r.Context(), operator, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "issue card")
		return
	}

	utils.ResponseCreated(w, "success", card)
}

// RedeemCard handles POST /api/admin/cards/redeem (staff)
func (h *CardHandler) RedeemCard(w http.ResponseWriter, r *http.Request) {
	var req request.RedeemCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	operator := utils.GetOperatorNameFromContext(r.Context())

	result, err := h.service.Redeem(r.Context(), operator, req.ID)
	if err != nil {
		handleServiceError(w, h.log, err, "redeem card")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// SearchCards handles GET /api/admin/cards?query= (staff)
func (h *CardHandler) SearchCards(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	cards, err := h.service.Search(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "search cards")
		return
	}

	utils.ResponseSuccess(w, "success", cards)
}

// CardHistory handles GET /api/admin/cards/history?target_id= (staff)
func (h *CardHandler) CardHistory(w http.ResponseWriter, r *http.Request) {
	cardID := r.URL.Query().Get("target_id")
	if cardID == "" {
		utils.ResponseBadRequest(w, "Card ID is required", nil)
		return
	}

	entries, err := h.service.History(r.Context(), cardID)
	if err != nil {
		handleServiceError(w, h.log, err, "get card history")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}
