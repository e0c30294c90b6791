package usecase

import (
	"wonder-rides/internal/data/repository"
	"wonder-rides/pkg/captcha"
	"wonder-rides/pkg/mailer"
	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every use case behind one constructor for wiring.
type Service struct {
	Card         CardService
	Booking      BookingService
	Intake       IntakeService
	Message      MessageService
	Waiver       WaiverService
	Announcement AnnouncementService
	Audit        AuditService
	Setting      SettingService
	Customer     CustomerService
	Dashboard    DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, verifier captcha.Verifier, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Card:         NewCardService(repo, log),
		Booking:      NewBookingService(repo, log),
		Intake:       NewIntakeService(repo, verifier, mail, config, log),
		Message:      NewMessageService(repo, log),
		Waiver:       NewWaiverService(repo, log),
		Announcement: NewAnnouncementService(repo, log),
		Audit:        NewAuditService(repo, log),
		Setting:      NewSettingService(repo, log),
		Customer:     NewCustomerService(repo, log),
		Dashboard:    NewDashboardService(repo, log),
	}
}
