package adaptor

import (
	"wonder-rides/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Card         *CardHandler
	Booking      *BookingHandler
	Message      *MessageHandler
	Waiver       *WaiverHandler
	Announcement *AnnouncementHandler
	Audit        *AuditHandler
	Setting      *SettingHandler
	Customer     *CustomerHandler
	Dashboard    *DashboardHandler
	Public       *PublicHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Card:         NewCardHandler(service.Card, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Message:      NewMessageHandler(service.Message, log),
		Waiver:       NewWaiverHandler(service.Waiver, log),
		Announcement: NewAnnouncementHandler(service.Announcement, log),
		Audit:        NewAuditHandler(service.Audit, log),
		Setting:      NewSettingHandler(service.Setting, log),
		Customer:     NewCustomerHandler(service.Customer, log),
		Dashboard:    NewDashboardHandler(service.Dashboard, log),
		Public:       NewPublicHandler(service.Intake, service.Announcement, log),
	}
}
