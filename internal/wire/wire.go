package wire

import (
	"net/http"

	"wonder-rides/internal/adaptor"
	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/usecase"
	"wonder-rides/pkg/captcha"
	"wonder-rides/pkg/mailer"
	"wonder-rides/pkg/middleware"
	"wonder-rides/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

// Wiring builds the full dependency graph and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	verifier := captcha.NewHCaptcha(config.Captcha.Secret, config.Captcha.VerifyURL, logger)
	mail := mailer.NewResend(config.Email, logger)

	service := usecase.NewService(repo, config, verifier, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wirePublic(r, handler.Public)

	// Everything under /api/admin requires a verified staff token.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthStaff(config.Auth.JWTSecret, logger))

		wireCard(r, handler.Card)
		wireBooking(r, handler.Booking)
		wireInbox(r, handler.Message, handler.Waiver)
		wireAnnouncement(r, handler.Announcement)
		wireOperations(r, handler.Audit, handler.Setting, handler.Customer, handler.Dashboard)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
