package adaptor

import (
	"net/http"

	"wonder-rides/internal/dto/request"
	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

type WaiverHandler struct {
	service usecase.WaiverService
	log     *zap.Logger
}

func NewWaiverHandler(service usecase.WaiverService, log *zap.Logger) *WaiverHandler {
	return &WaiverHandler{
		service: service,
		log:     log.With(zap.String("handler", "waiver")),
	}
}

// ListWaivers handles GET /api/admin/waivers?page=&limit=&search= (staff)
func (h *WaiverHandler) ListWaivers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("limit"), 20),
	}

	waivers, err := h.service.List(r.Context(), query.Get("search"), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list waivers")
		return
	}

	utils.ResponseSuccess(w, "success", waivers)
}

// ExportWaivers handles GET /api/admin/waivers/export (staff) and
// streams a CSV download instead of the usual JSON envelope.
func (h *WaiverHandler) ExportWaivers(w http.ResponseWriter, r *http.Request) {
	filename, csv, err := h.service.Export(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "export waivers")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(csv)
}
