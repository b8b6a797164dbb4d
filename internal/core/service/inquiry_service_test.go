package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

type stubInquiryRepo struct {
	created []*domain.Inquiry
	byID    map[string]*domain.Inquiry
}

func newStubInquiryRepo() *stubInquiryRepo {
	return &stubInquiryRepo{byID: make(map[string]*domain.Inquiry)}
}

func (r *stubInquiryRepo) Create(_ context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	clone := *inq
	clone.ID = "inq_" + time.Now().Format("150405.000000000")
	r.created = append(r.created, &clone)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubInquiryRepo) FindByID(_ context.Context, id string) (*domain.Inquiry, error) {
	inq, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	return inq, nil
}

func (r *stubInquiryRepo) List(_ context.Context, _ ports.InquiryFilter) ([]*domain.Inquiry, int64, error) {
	return r.created, int64(len(r.created)), nil
}

func (r *stubInquiryRepo) UpdateStatus(_ context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	inq, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrInquiryNotFound
	}
	inq.Status = status
	return inq, nil
}

func (r *stubInquiryRepo) Count(_ context.Context) (int64, error) { return int64(len(r.created)), nil }
func (r *stubInquiryRepo) CountByStatus(_ context.Context, _ domain.InquiryStatus) (int64, error) {
	return 0, nil
}
func (r *stubInquiryRepo) CountSince(_ context.Context, _ time.Time) (int64, error) { return 0, nil }

type stubEventRepo struct {
	created []*domain.EventInquiry
	byID    map[string]*domain.EventInquiry
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{byID: make(map[string]*domain.EventInquiry)}
}

func (r *stubEventRepo) Create(_ context.Context, inq *domain.EventInquiry) (*domain.EventInquiry, error) {
	clone := *inq
	clone.ID = "evt_1"
	r.created = append(r.created, &clone)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id string) (*domain.EventInquiry, error) {
	inq, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventInquiryNotFound
	}
	return inq, nil
}

func (r *stubEventRepo) List(_ context.Context, _ ports.EventInquiryFilter) ([]*domain.EventInquiry, int64, error) {
	return r.created, int64(len(r.created)), nil
}

func (r *stubEventRepo) UpdateStatus(_ context.Context, id string, status domain.InquiryStatus) (*domain.EventInquiry, error) {
	inq, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventInquiryNotFound
	}
	inq.Status = status
	return inq, nil
}

func (r *stubEventRepo) Count(_ context.Context) (int64, error) { return int64(len(r.created)), nil }
func (r *stubEventRepo) CountByStatus(_ context.Context, _ domain.InquiryStatus) (int64, error) {
	return 0, nil
}
func (r *stubEventRepo) CountSince(_ context.Context, _ time.Time) (int64, error) { return 0, nil }

type stubRoomRepo struct {
	rooms map[string]*domain.Room
}

func newStubRoomRepo(rooms ...*domain.Room) *stubRoomRepo {
	r := &stubRoomRepo{rooms: make(map[string]*domain.Room)}
	for _, room := range rooms {
		r.rooms[room.ID] = room
	}
	return r
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	clone := *room
	clone.ID = "room_" + clone.Slug
	r.rooms[clone.ID] = &clone
	return &clone, nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id string) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	clone := *room
	return &clone, nil
}

func (r *stubRoomRepo) FindActiveBySlug(_ context.Context, slug string) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.Slug == slug && room.IsActive {
			clone := *room
			return &clone, nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (r *stubRoomRepo) ListActive(_ context.Context) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, room := range r.rooms {
		if room.IsActive {
			clone := *room
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubRoomRepo) ListFeatured(_ context.Context) ([]*domain.Room, error) { return nil, nil }
func (r *stubRoomRepo) ListActiveByType(_ context.Context, _ domain.RoomType) ([]*domain.Room, error) {
	return nil, nil
}
func (r *stubRoomRepo) ListAdmin(_ context.Context, _ ports.RoomAdminFilter) ([]*domain.Room, error) {
	return nil, nil
}

func (r *stubRoomRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, room := range r.rooms {
		if room.Slug == slug && room.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *domain.Room) (*domain.Room, error) {
	clone := *room
	r.rooms[clone.ID] = &clone
	return &clone, nil
}

func (r *stubRoomRepo) CountActive(_ context.Context) (int64, error)   { return 0, nil }
func (r *stubRoomRepo) CountFeatured(_ context.Context) (int64, error) { return 0, nil }

type stubNotifier struct {
	inquiries []*domain.Inquiry
	events    []*domain.EventInquiry
}

func (n *stubNotifier) InquiryReceived(inq *domain.Inquiry)           { n.inquiries = append(n.inquiries, inq) }
func (n *stubNotifier) EventInquiryReceived(inq *domain.EventInquiry) { n.events = append(n.events, inq) }

func intPtr(n int) *int { return &n }

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newInquiryFixture(rooms *stubRoomRepo) (*InquiryService, *stubInquiryRepo, *stubEventRepo, *stubNotifier) {
	inqRepo := newStubInquiryRepo()
	evtRepo := newStubEventRepo()
	notifier := &stubNotifier{}
	svc := NewInquiryService(inqRepo, evtRepo, rooms, notifier, zerolog.Nop())
	svc.now = fixedClock
	return svc, inqRepo, evtRepo, notifier
}

func validInquiryInput() ports.CreateInquiryInput {
	return ports.CreateInquiryInput{
		Name:        "John Doe",
		Email:       "john@example.com",
		Phone:       "+254700000000",
		InquiryType: "booking",
		Message:     "I would like to book this room for a long weekend.",
	}
}

func TestInquiryService_Create_Success(t *testing.T) {
	svc, repo, _, notifier := newInquiryFixture(newStubRoomRepo())

	in := validInquiryInput()
	in.CheckIn = "2026-03-15"
	in.CheckOut = "2026-03-17"
	in.Guests = intPtr(2)

	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.InquiryNew {
		t.Fatalf("status = %s, want new", created.Status)
	}
	if created.CheckIn == nil || created.CheckOut == nil {
		t.Fatalf("expected parsed dates")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted inquiry")
	}
	if len(notifier.inquiries) != 1 {
		t.Fatalf("expected notification for the new inquiry")
	}
}

func TestInquiryService_Create_MissingFields(t *testing.T) {
	svc, _, _, _ := newInquiryFixture(newStubRoomRepo())

	_, err := svc.Create(context.Background(), ports.CreateInquiryInput{
		Name:  "John",
		Email: "   ",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// All missing keys reported in one pass.
	for _, field := range []string{"email", "phone", "inquiry_type", "message"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("missing-fields message lacks %q: %s", field, err)
		}
	}
}

func TestInquiryService_Create_GuestCountBounds(t *testing.T) {
	svc, _, _, _ := newInquiryFixture(newStubRoomRepo())
	ctx := context.Background()

	for _, guests := range []int{0, 11} {
		in := validInquiryInput()
		in.Guests = intPtr(guests)
		if _, err := svc.Create(ctx, in); !domain.IsValidation(err) {
			t.Fatalf("guests=%d: expected rejection, got %v", guests, err)
		}
	}
	for _, guests := range []int{1, 10} {
		in := validInquiryInput()
		in.Guests = intPtr(guests)
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("guests=%d: %v", guests, err)
		}
	}
}

func TestInquiryService_Create_RoomValidation(t *testing.T) {
	rooms := newStubRoomRepo(
		&domain.Room{ID: "room_1", Slug: "garden-cottage", Type: domain.RoomCottage, IsActive: true},
		&domain.Room{ID: "room_2", Slug: "old-wing", Type: domain.RoomStandard, IsActive: false},
	)
	svc, _, _, _ := newInquiryFixture(rooms)
	ctx := context.Background()

	in := validInquiryInput()
	in.RoomID = "room_missing"
	if _, err := svc.Create(ctx, in); !domain.IsValidation(err) {
		t.Fatalf("nonexistent room: expected validation error, got %v", err)
	}

	in.RoomID = "room_2"
	if _, err := svc.Create(ctx, in); !domain.IsValidation(err) {
		t.Fatalf("inactive room: expected validation error, got %v", err)
	}

	in.RoomID = "room_1"
	created, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("active room: %v", err)
	}
	if created.Room == nil || created.Room.Slug != "garden-cottage" {
		t.Fatalf("expected embedded room ref, got %+v", created.Room)
	}
}

func TestInquiryService_Create_DateRules(t *testing.T) {
	svc, _, _, _ := newInquiryFixture(newStubRoomRepo())
	ctx := context.Background()

	in := validInquiryInput()
	in.CheckIn = "2026-03-15"
	in.CheckOut = "2026-03-15"
	_, err := svc.Create(ctx, in)
	if err == nil || !strings.Contains(err.Error(), "after check-in") {
		t.Fatalf("equal dates: got %v", err)
	}

	in.CheckIn = "2026-02-20" // before the fixed clock's date
	in.CheckOut = "2026-02-25"
	_, err = svc.Create(ctx, in)
	if err == nil || !strings.Contains(err.Error(), "past") {
		t.Fatalf("past check-in: got %v", err)
	}
}

func validEventInput() ports.CreateEventInquiryInput {
	return ports.CreateEventInquiryInput{
		Name:       "Jane Smith",
		Email:      "jane@example.com",
		Phone:      "+254711111111",
		EventType:  "wedding",
		EventDate:  "2026-06-20",
		GuestCount: intPtr(150),
		Message:    "We would like to host our wedding reception here.",
	}
}

func TestInquiryService_CreateEvent_Success(t *testing.T) {
	svc, _, repo, notifier := newInquiryFixture(newStubRoomRepo())

	created, err := svc.CreateEvent(context.Background(), validEventInput())
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if created.EventType != domain.EventWedding || created.GuestCount != 150 {
		t.Fatalf("unexpected event inquiry: %+v", created)
	}
	if len(repo.created) != 1 || len(notifier.events) != 1 {
		t.Fatalf("expected persisted event inquiry and notification")
	}
}

func TestInquiryService_CreateEvent_Rejections(t *testing.T) {
	svc, _, _, _ := newInquiryFixture(newStubRoomRepo())
	ctx := context.Background()

	past := validEventInput()
	past.EventDate = "2026-02-01"
	if _, err := svc.CreateEvent(ctx, past); !domain.IsValidation(err) {
		t.Fatalf("past date: %v", err)
	}

	crowd := validEventInput()
	crowd.GuestCount = intPtr(501)
	if _, err := svc.CreateEvent(ctx, crowd); !domain.IsValidation(err) {
		t.Fatalf("oversize guest count: %v", err)
	}

	badType := validEventInput()
	badType.EventType = "rave"
	_, err := svc.CreateEvent(ctx, badType)
	if !domain.IsValidation(err) || !strings.Contains(err.Error(), "wedding") {
		t.Fatalf("bad event type should list the allowed set: %v", err)
	}
}

func TestInquiryService_SetStatus(t *testing.T) {
	svc, repo, _, _ := newInquiryFixture(newStubRoomRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validInquiryInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SetStatus(ctx, created.ID, "escalated"); !domain.IsValidation(err) {
		t.Fatalf("unknown status: %v", err)
	}

	updated, err := svc.SetStatus(ctx, created.ID, "replied")
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != domain.InquiryReplied {
		t.Fatalf("status = %s, want replied", updated.Status)
	}

	if err := svc.Archive(ctx, created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if repo.byID[created.ID].Status != domain.InquiryArchived {
		t.Fatalf("archive did not stick")
	}
}
