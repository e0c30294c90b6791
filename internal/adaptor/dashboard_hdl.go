package adaptor

import (
	"net/http"

	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetOverview handles GET /api/admin/dashboard (staff)
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard overview")
		return
	}

	utils.ResponseSuccess(w, "success", overview)
}
