package adaptor

import (
	"encoding/json"
	"net/http"

	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

type AnnouncementHandler struct {
	service usecase.AnnouncementService
	log     *zap.Logger
}

func NewAnnouncementHandler(service usecase.AnnouncementService, log *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		log:     log.With(zap.String("handler", "announcement")),
	}
}

// SetAnnouncement handles POST /api/admin/announcement (staff)
func (h *AnnouncementHandler) SetAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req request.SetAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	announcement, err := h.service.Set(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set announcement")
		return
	}

	utils.ResponseSuccess(w, "success", announcement)
}

// GetAnnouncement handles GET /api/admin/announcement (staff): the
// latest version plus recent history for the editor.
func (h *AnnouncementHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.Current(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get announcement")
		return
	}

	history, err := h.service.History(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get announcement history")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{
		"current": current,
		"history": history,
	})
}

// DeleteAnnouncement handles DELETE /api/admin/announcement (staff)
func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Delete(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "delete announcement")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
