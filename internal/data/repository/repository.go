package repository

import (
	"wonder-rides/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	// DB is exposed so services can open transactions that span
	// multiple repositories (redeem + audit, conflict check + insert).
	DB database.PgxIface

	Card         CardRepository
	Booking      BookingRepository
	Message      MessageRepository
	Waiver       WaiverRepository
	Announcement AnnouncementRepository
	Audit        AuditRepository
	Setting      SettingRepository
	Dashboard    DashboardRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:           db,
		Card:         NewCardRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Message:      NewMessageRepository(db, log),
		Waiver:       NewWaiverRepository(db, log),
		Announcement: NewAnnouncementRepository(db, log),
		Audit:        NewAuditRepository(db, log),
		Setting:      NewSettingRepository(db, log),
		Dashboard:    NewDashboardRepository(db, log),
	}
}
