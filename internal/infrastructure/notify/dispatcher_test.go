package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

type recordingMailer struct {
	mu    sync.Mutex
	mails []ports.Mail
}

func (m *recordingMailer) Send(_ context.Context, mail ports.Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mails = append(m.mails, mail)
	return nil
}

func (m *recordingMailer) sent() []ports.Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.Mail(nil), m.mails...)
}

func TestDispatcher_InquiryReceived(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(2, mailer, "info@example.com", zerolog.Nop())
	d.Start()

	checkIn := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)
	d.InquiryReceived(&domain.Inquiry{
		Name:        "John Doe",
		Email:       "john@example.com",
		Phone:       "+254700000000",
		InquiryType: domain.InquiryBooking,
		CheckIn:     &checkIn,
		CheckOut:    &checkOut,
		Guests:      2,
		Message:     "Looking forward to the stay.",
	})
	d.Close()

	mails := mailer.sent()
	if len(mails) != 2 {
		t.Fatalf("sent %d mails, want 2 (alert + confirmation)", len(mails))
	}

	var toBusiness, toGuest bool
	for _, m := range mails {
		switch m.To[0] {
		case "info@example.com":
			toBusiness = true
			if m.ReplyTo != "john@example.com" {
				t.Fatalf("business alert reply-to = %q", m.ReplyTo)
			}
		case "john@example.com":
			toGuest = true
		}
	}
	if !toBusiness || !toGuest {
		t.Fatalf("expected one mail to the business and one to the guest: %+v", mails)
	}
}

func TestDispatcher_EventInquiryReceived(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(1, mailer, "info@example.com", zerolog.Nop())
	d.Start()

	d.EventInquiryReceived(&domain.EventInquiry{
		Name:       "Jane Smith",
		Email:      "jane@example.com",
		Phone:      "+254711111111",
		EventType:  domain.EventWedding,
		EventDate:  time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		GuestCount: 150,
		Message:    "Wedding reception for 150 guests.",
	})
	d.Close()

	if got := len(mailer.sent()); got != 2 {
		t.Fatalf("sent %d mails, want 2", got)
	}
}
