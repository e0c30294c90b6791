package adaptor

import (
	"encoding/json"
	"net/http"

	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

type SettingHandler struct {
	service usecase.SettingService
	log     *zap.Logger
}

func NewSettingHandler(service usecase.SettingService, log *zap.Logger) *SettingHandler {
	return &SettingHandler{
		service: service,
		log:     log.With(zap.String("handler", "setting")),
	}
}

// GetSetting handles GET /api/admin/settings?key= (staff). A key that
// was never written returns a null value, not an error.
func (h *SettingHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")

	value, err := h.service.Get(r.Context(), key)
	if err != nil {
		handleServiceError(w, h.log, err, "get setting")
		return
	}

	utils.ResponseSuccess(w, "success", map[string]any{
		"key":   key,
		"value": value,
	})
}

// UpsertSetting handles POST /api/admin/settings (staff)
func (h *SettingHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Set(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "upsert setting")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
