package wire

import (
	"wonder-rides/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireOperations mounts the smaller back-office routes: audit log,
// settings, customer lookup and the dashboard.
func wireOperations(
	r chi.Router,
	auditHandler *adaptor.AuditHandler,
	settingHandler *adaptor.SettingHandler,
	customerHandler *adaptor.CustomerHandler,
	dashboardHandler *adaptor.DashboardHandler,
) {
	// GET /api/admin/audit?page= - Paginated audit log
	r.Get("/audit", auditHandler.ListAuditLog)

	// GET /api/admin/settings?key= - Read one setting
	r.Get("/settings", settingHandler.GetSetting)

	// POST /api/admin/settings - Upsert one setting
	r.Post("/settings", settingHandler.UpsertSetting)

	// GET /api/admin/customers/lookup?phone= - Prefill from history
	r.Get("/customers/lookup", customerHandler.LookupCustomer)

	// GET /api/admin/dashboard - Overview counts and charts
	r.Get("/dashboard", dashboardHandler.GetOverview)
}
