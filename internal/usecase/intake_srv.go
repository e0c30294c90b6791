package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/request"
	"wonder-rides/pkg/captcha"
	"wonder-rides/pkg/mailer"
	"wonder-rides/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IntakeService handles the two public submission endpoints: the
// contact form (captcha-gated) and the waiver form (bot heuristics).
type IntakeService interface {
	SubmitContact(ctx context.Context, req *request.ContactRequest) error
	SubmitWaiver(ctx context.Context, req *request.WaiverRequest) error
}

type intakeService struct {
	repo       *repository.Repository
	captcha    captcha.Verifier
	mailer     mailer.Mailer
	adminEmail string
	log        *zap.Logger
	now        func() time.Time
}

func NewIntakeService(repo *repository.Repository, verifier captcha.Verifier, mail mailer.Mailer, config *utils.Config, log *zap.Logger) IntakeService {
	return &intakeService{
		repo:       repo,
		captcha:    verifier,
		mailer:     mail,
		adminEmail: config.Email.AdminEmail,
		log:        log.With(zap.String("service", "intake")),
		now:        time.Now,
	}
}

// SubmitContact verifies the captcha token, stores the message as
// unread, then sends a best-effort notification email. A failed send
// is logged and never fails the request.
func (s *intakeService) SubmitContact(ctx context.Context, req *request.ContactRequest) error {
	human, err := s.captcha.Verify(ctx, req.CaptchaToken)
	if err != nil {
		s.log.Warn("Captcha verification errored", zap.Error(err))
		return ErrCaptcha
	}
	if !human {
		return ErrCaptcha
	}

	subject := req.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	message := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            optional(req.Phone),
		ChildAge:         optional(req.ChildAge),
		PreferredContact: optional(req.PreferredContact),
		Subject:          subject,
		Body:             req.Message,
		Status:           entity.MessageStatusUnread,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		return err
	}

	if s.adminEmail != "" {
		emailSubject := "New Inquiry: " + subject
		if err := s.mailer.Send(ctx, s.adminEmail, emailSubject, buildContactEmail(req)); err != nil {
			s.log.Warn("Failed to send contact notification email", zap.Error(err))
		}
	}

	s.log.Info("Contact message received",
		zap.String("message_id", message.ID.String()),
		zap.String("subject", subject),
	)

	return nil
}

// SubmitWaiver applies the bot heuristics, then validates and stores
// the signed waiver. A discarded bot submission still reports success
// to the client so the heuristic stays invisible.
func (s *intakeService) SubmitWaiver(ctx context.Context, req *request.WaiverRequest) error {
	if isLikelyBot(req.Honeypot, req.FormLoadedAt, s.now()) {
		s.log.Warn("Discarded likely-bot waiver submission",
			zap.Bool("honeypot", req.Honeypot != ""),
		)
		return nil
	}

	if req.Name == "" || req.Date == "" || req.Location == "" || len(req.SignatureData) == 0 {
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("%w: invalid date", ErrValidation)
	}

	waiver := &entity.Waiver{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		Name:          req.Name,
		ChildName:     optional(req.ChildName),
		Date:          date,
		Location:      req.Location,
		SignatureData: req.SignatureData,
	}

	if err := s.repo.Waiver.Create(ctx, waiver); err != nil {
		return err
	}

	s.log.Info("Waiver signed",
		zap.String("waiver_id", waiver.ID.String()),
		zap.String("location", waiver.Location),
	)

	return nil
}

func buildContactEmail(req *request.ContactRequest) string {
	orNA := func(value string) string {
		if value == "" {
			return "N/A"
		}
		return value
	}

	var b strings.Builder
	b.WriteString("<h2>New Message from the Wonder Rides Website</h2>")
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s %s (%s)</p>", req.FirstName, req.LastName, req.Email)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", orNA(req.Phone))
	fmt.Fprintf(&b, "<p><strong>Child Age:</strong> %s</p>", orNA(req.ChildAge))
	fmt.Fprintf(&b, "<p><strong>Preferred Contact:</strong> %s</p>", orNA(req.PreferredContact))
	b.WriteString("<hr /><h3>Message:</h3>")
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(req.Message, "\n", "<br>"))
	b.WriteString("<hr /><p><small>This email was sent automatically from the website contact form.</small></p>")
	return b.String()
}
