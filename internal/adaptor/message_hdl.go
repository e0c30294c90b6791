package adaptor

import (
	"encoding/json"
	"net/http"

	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

type MessageHandler struct {
	service usecase.MessageService
	log     *zap.Logger
}

func NewMessageHandler(service usecase.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With(zap.String("handler", "message")),
	}
}

// ListMessages handles GET /api/admin/messages?page=&limit=&search= (staff)
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("limit"), 20),
	}

	messages, err := h.service.List(r.Context(), query.Get("search"), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list messages")
		return
	}

	utils.ResponseSuccess(w, "success", messages)
}

// UpdateMessageStatus handles PATCH /api/admin/messages (staff)
func (h *MessageHandler) UpdateMessageStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateMessageStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "update message status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
