package notify

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/api/metrics"
	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	sendTimeout    = 30 * time.Second

	siteName = "Wima Serenity Gardens"
)

// Dispatcher implements ports.Notifier. Mails are routed to a fixed set of
// workers by consistent hashing on the guest's email, so the business alert
// and the guest confirmation for one inquiry are delivered in order.
type Dispatcher struct {
	workers       []chan ports.Mail
	mailer        ports.Mailer
	businessEmail string
	log           zerolog.Logger
	wg            sync.WaitGroup
	closeOnce     sync.Once
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, businessEmail string, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:       make([]chan ports.Mail, numWorkers),
		mailer:        mailer,
		businessEmail: businessEmail,
		log:           log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Mail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Close stops accepting mail and waits for queued deliveries to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		for _, ch := range d.workers {
			close(ch)
		}
	})
	d.wg.Wait()
}

// InquiryReceived queues the business alert and the guest confirmation for a
// new booking inquiry.
func (d *Dispatcher) InquiryReceived(inq *domain.Inquiry) {
	d.enqueue(inq.Email, ports.Mail{
		To:      []string{d.businessEmail},
		ReplyTo: inq.Email,
		Subject: fmt.Sprintf("New Booking Inquiry - %s", inq.Name),
		Body:    inquiryAlertBody(inq),
	})
	d.enqueue(inq.Email, ports.Mail{
		To:      []string{inq.Email},
		Subject: fmt.Sprintf("Thank you for your inquiry - %s", siteName),
		Body:    inquiryConfirmationBody(inq),
	})
}

// EventInquiryReceived queues the business alert and the guest confirmation
// for a new event inquiry.
func (d *Dispatcher) EventInquiryReceived(inq *domain.EventInquiry) {
	d.enqueue(inq.Email, ports.Mail{
		To:      []string{d.businessEmail},
		ReplyTo: inq.Email,
		Subject: fmt.Sprintf("New Event Inquiry - %s", inq.Name),
		Body:    eventAlertBody(inq),
	})
	d.enqueue(inq.Email, ports.Mail{
		To:      []string{inq.Email},
		Subject: fmt.Sprintf("Thank you for your event inquiry - %s", siteName),
		Body:    eventConfirmationBody(inq),
	})
}

func (d *Dispatcher) enqueue(key string, mail ports.Mail) {
	select {
	case d.workers[d.shardIndex(key)] <- mail:
	default:
		d.log.Warn().Str("subject", mail.Subject).Msg("notification queue full, dropping mail")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(id int, ch <-chan ports.Mail) {
	defer d.wg.Done()
	for mail := range ch {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.mailer.Send(ctx, mail); err != nil {
			metrics.MailsSentTotal.WithLabelValues("error").Inc()
			d.log.Error().Err(err).
				Str("subject", mail.Subject).
				Int("worker_id", id).
				Msg("notification delivery failed")
		} else {
			metrics.MailsSentTotal.WithLabelValues("ok").Inc()
		}
		cancel()
	}
}

func inquiryAlertBody(inq *domain.Inquiry) string {
	var b strings.Builder
	b.WriteString("A new inquiry has been submitted.\n\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\nType: %s\n", inq.Name, inq.Email, inq.Phone, inq.InquiryType)
	if inq.Room != nil {
		fmt.Fprintf(&b, "Room: %s\n", inq.Room.Name)
	}
	if inq.CheckIn != nil && inq.CheckOut != nil {
		fmt.Fprintf(&b, "Check-in: %s\nCheck-out: %s\n", inq.CheckIn.Format("2006-01-02"), inq.CheckOut.Format("2006-01-02"))
	}
	if inq.Guests > 0 {
		fmt.Fprintf(&b, "Guests: %d\n", inq.Guests)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", inq.Message)
	return b.String()
}

func inquiryConfirmationBody(inq *domain.Inquiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", inq.Name)
	fmt.Fprintf(&b, "Thank you for contacting %s. We have received your inquiry and our team will get back to you within 24 hours.\n\n", siteName)
	if inq.CheckIn != nil && inq.CheckOut != nil {
		fmt.Fprintf(&b, "Your requested dates: %s to %s\n\n", inq.CheckIn.Format("2006-01-02"), inq.CheckOut.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Warm regards,\nThe %s Team\n", siteName)
	return b.String()
}

func eventAlertBody(inq *domain.EventInquiry) string {
	var b strings.Builder
	b.WriteString("A new event inquiry has been submitted.\n\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n", inq.Name, inq.Email, inq.Phone)
	fmt.Fprintf(&b, "Event type: %s\nEvent date: %s\nGuest count: %d\n", inq.EventType, inq.EventDate.Format("2006-01-02"), inq.GuestCount)
	if inq.VenuePreference != "" {
		fmt.Fprintf(&b, "Venue preference: %s\n", inq.VenuePreference)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", inq.Message)
	return b.String()
}

func eventConfirmationBody(inq *domain.EventInquiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", inq.Name)
	fmt.Fprintf(&b, "Thank you for considering %s for your %s on %s. We have received your inquiry and our events team will get back to you within 24 hours.\n\n",
		siteName, inq.EventType, inq.EventDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Warm regards,\nThe %s Team\n", siteName)
	return b.String()
}
