package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wonder-rides/internal/data/entity"
	"wonder-rides/internal/data/repository"
	"wonder-rides/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeMessageRepo struct {
	created *entity.Message
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	f.created = message
	return nil
}

func (f *fakeMessageRepo) Find(ctx context.Context, search string, limit, offset int) ([]*entity.Message, error) {
	return nil, nil
}

func (f *fakeMessageRepo) Count(ctx context.Context, search string) (int64, error) {
	return 0, nil
}

func (f *fakeMessageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MessageStatus) error {
	return nil
}

type fakeVerifier struct {
	ok  bool
	err error
}

func (f fakeVerifier) Verify(ctx context.Context, token string) (bool, error) {
	return f.ok, f.err
}

type fakeMailer struct {
	sent    int
	lastTo  string
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html string) error {
	f.sent++
	f.lastTo = to
	return f.sendErr
}

func newIntakeService(messages *fakeMessageRepo, waivers *fakeWaiverRepo, verifier fakeVerifier, mail *fakeMailer) *intakeService {
	return &intakeService{
		repo:       &repository.Repository{Message: messages, Waiver: waivers},
		captcha:    verifier,
		mailer:     mail,
		adminEmail: "admin@example.com",
		log:        zap.NewNop(),
		now:        func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func contactRequest() *request.ContactRequest {
	return &request.ContactRequest{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Message:      "Do you host birthday parties?",
		CaptchaToken: "token",
	}
}

func TestSubmitContactStoresAndNotifies(t *testing.T) {
	messages := &fakeMessageRepo{}
	mail := &fakeMailer{}
	service := newIntakeService(messages, &fakeWaiverRepo{}, fakeVerifier{ok: true}, mail)

	if err := service.SubmitContact(context.Background(), contactRequest()); err != nil {
		t.Fatalf("SubmitContact returned error: %v", err)
	}

	if messages.created == nil {
		t.Fatal("message was not stored")
	}
	if messages.created.Subject != "General Inquiry" {
		t.Fatalf("expected default subject, got %s", messages.created.Subject)
	}
	if messages.created.Status != entity.MessageStatusUnread {
		t.Fatalf("expected unread status, got %s", messages.created.Status)
	}
	if mail.sent != 1 || mail.lastTo != "admin@example.com" {
		t.Fatalf("notification not sent: %+v", mail)
	}
}

func TestSubmitContactRejectsFailedCaptcha(t *testing.T) {
	messages := &fakeMessageRepo{}
	service := newIntakeService(messages, &fakeWaiverRepo{}, fakeVerifier{ok: false}, &fakeMailer{})

	err := service.SubmitContact(context.Background(), contactRequest())
	if !errors.Is(err, ErrCaptcha) {
		t.Fatalf("expected ErrCaptcha, got %v", err)
	}
	if messages.created != nil {
		t.Fatal("message must not be stored when captcha fails")
	}
}

func TestSubmitContactMailFailureIsNotFatal(t *testing.T) {
	messages := &fakeMessageRepo{}
	mail := &fakeMailer{sendErr: errors.New("smtp down")}
	service := newIntakeService(messages, &fakeWaiverRepo{}, fakeVerifier{ok: true}, mail)

	if err := service.SubmitContact(context.Background(), contactRequest()); err != nil {
		t.Fatalf("mail failure must not fail the request: %v", err)
	}
	if messages.created == nil {
		t.Fatal("message was not stored")
	}
}

func waiverRequest() *request.WaiverRequest {
	return &request.WaiverRequest{
		Name:          "Jane Doe",
		Date:          "2026-03-01",
		Location:      "Main Park",
		SignatureData: json.RawMessage(`[[1,2],[3,4]]`),
	}
}

func TestSubmitWaiverStores(t *testing.T) {
	waivers := &fakeWaiverRepo{}
	service := newIntakeService(&fakeMessageRepo{}, waivers, fakeVerifier{ok: true}, &fakeMailer{})

	if err := service.SubmitWaiver(context.Background(), waiverRequest()); err != nil {
		t.Fatalf("SubmitWaiver returned error: %v", err)
	}
	if len(waivers.waivers) != 1 {
		t.Fatalf("expected 1 stored waiver, got %d", len(waivers.waivers))
	}
	if !waivers.waivers[0].Date.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected waiver date: %v", waivers.waivers[0].Date)
	}
}

func TestSubmitWaiverDiscardsBots(t *testing.T) {
	waivers := &fakeWaiverRepo{}
	service := newIntakeService(&fakeMessageRepo{}, waivers, fakeVerifier{ok: true}, &fakeMailer{})

	req := waiverRequest()
	req.Honeypot = "filled"

	if err := service.SubmitWaiver(context.Background(), req); err != nil {
		t.Fatalf("bot discard must look like success: %v", err)
	}
	if len(waivers.waivers) != 0 {
		t.Fatal("bot submission must not be stored")
	}
}

func TestSubmitWaiverRequiresFields(t *testing.T) {
	waivers := &fakeWaiverRepo{}
	service := newIntakeService(&fakeMessageRepo{}, waivers, fakeVerifier{ok: true}, &fakeMailer{})

	req := waiverRequest()
	req.SignatureData = nil

	err := service.SubmitWaiver(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
