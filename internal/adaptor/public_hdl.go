package adaptor

import (
	"encoding/json"
	"net/http"

	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

// PublicHandler serves the unauthenticated website endpoints: contact
// form, waiver form and the announcement banner.
type PublicHandler struct {
	intake       usecase.IntakeService
	announcement usecase.AnnouncementService
	log          *zap.Logger
}

func NewPublicHandler(intake usecase.IntakeService, announcement usecase.AnnouncementService, log *zap.Logger) *PublicHandler {
	return &PublicHandler{
		intake:       intake,
		announcement: announcement,
		log:          log.With(zap.String("handler", "public")),
	}
}

// SubmitContact handles POST /api/contact (public)
func (h *PublicHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.intake.SubmitContact(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "submit contact")
		return
	}

	utils.ResponseCreated(w, "Message received", nil)
}

// SubmitWaiver handles POST /api/waiver (public). Submissions caught
// by the bot heuristics are discarded server-side but still answered
// with 201.
func (h *PublicHandler) SubmitWaiver(w http.ResponseWriter, r *http.Request) {
	var req request.WaiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.intake.SubmitWaiver(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "submit waiver")
		return
	}

	utils.ResponseCreated(w, "Waiver received", nil)
}

// GetAnnouncement handles GET /api/announcement (public). Data is null
// when no announcement is live.
func (h *PublicHandler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcement, err := h.announcement.Public(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get public announcement")
		return
	}

	if announcement == nil {
		utils.ResponseSuccess(w, "success", nil)
		return
	}

	utils.ResponseSuccess(w, "success", announcement)
}
