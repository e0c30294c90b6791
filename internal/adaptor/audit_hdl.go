package adaptor

import (
	"net/http"

	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

type AuditHandler struct {
	service usecase.AuditService
	log     *zap.Logger
}

func NewAuditHandler(service usecase.AuditService, log *zap.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		log:     log.With(zap.String("handler", "audit")),
	}
}

// ListAuditLog handles GET /api/admin/audit?page=&limit= (staff)
func (h *AuditHandler) ListAuditLog(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("limit"), 20),
	}

	entries, err := h.service.List(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list audit log")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}
