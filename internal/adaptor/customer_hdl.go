package adaptor

import (
	"net/http"

	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// LookupCustomer handles GET /api/admin/customers/lookup?phone= (staff).
// An unknown phone returns success with null data so the form simply
// stays empty.
func (h *CustomerHandler) LookupCustomer(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	prefill, err := h.service.Lookup(r.Context(), phone)
	if err != nil {
		handleServiceError(w, h.log, err, "lookup customer")
		return
	}

	utils.ResponseSuccess(w, "success", prefill)
}
