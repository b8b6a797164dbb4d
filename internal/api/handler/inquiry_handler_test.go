package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

type stubInquiryService struct {
	createFn    func(ctx context.Context, in ports.CreateInquiryInput) (*domain.Inquiry, error)
	listFn      func(ctx context.Context, filter ports.InquiryFilter) ([]*domain.Inquiry, int64, error)
	setStatusFn func(ctx context.Context, id, status string) (*domain.Inquiry, error)
}

func (s *stubInquiryService) Create(ctx context.Context, in ports.CreateInquiryInput) (*domain.Inquiry, error) {
	return s.createFn(ctx, in)
}

func (s *stubInquiryService) CreateEvent(context.Context, ports.CreateEventInquiryInput) (*domain.EventInquiry, error) {
	return nil, errors.New("not implemented")
}

func (s *stubInquiryService) List(ctx context.Context, filter ports.InquiryFilter) ([]*domain.Inquiry, int64, error) {
	return s.listFn(ctx, filter)
}

func (s *stubInquiryService) Get(context.Context, string) (*domain.Inquiry, error) {
	return nil, domain.ErrInquiryNotFound
}

func (s *stubInquiryService) SetStatus(ctx context.Context, id, status string) (*domain.Inquiry, error) {
	return s.setStatusFn(ctx, id, status)
}

func (s *stubInquiryService) Archive(context.Context, string) error { return nil }

func (s *stubInquiryService) ListEvents(context.Context, ports.EventInquiryFilter) ([]*domain.EventInquiry, int64, error) {
	return nil, 0, nil
}

func (s *stubInquiryService) GetEvent(context.Context, string) (*domain.EventInquiry, error) {
	return nil, domain.ErrEventInquiryNotFound
}

func (s *stubInquiryService) SetEventStatus(context.Context, string, string) (*domain.EventInquiry, error) {
	return nil, domain.ErrEventInquiryNotFound
}

func (s *stubInquiryService) ArchiveEvent(context.Context, string) error { return nil }

func TestInquiryHandler_Create_Success(t *testing.T) {
	stub := &stubInquiryService{
		createFn: func(ctx context.Context, in ports.CreateInquiryInput) (*domain.Inquiry, error) {
			if in.Name != "John Doe" || in.Guests == nil || *in.Guests != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Inquiry{
				ID:          "inq1",
				Name:        in.Name,
				InquiryType: domain.InquiryBooking,
				Status:      domain.InquiryNew,
			}, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/inquiries",
		`{"name":"John Doe","email":"john@example.com","phone":"+254700000000",
		  "inquiry_type":"booking","guests":2,"message":"A long weekend stay please."}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope: %+v", resp)
	}
	inq, ok := resp["inquiry"].(map[string]any)
	if !ok || inq["status"] != "new" {
		t.Fatalf("unexpected inquiry payload: %+v", resp["inquiry"])
	}
}

func TestInquiryHandler_Create_ValidationErrorPropagates(t *testing.T) {
	stub := &stubInquiryService{
		createFn: func(ctx context.Context, in ports.CreateInquiryInput) (*domain.Inquiry, error) {
			return nil, domain.NewValidationError("Invalid room ID")
		},
	}
	h := NewInquiryHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/inquiries",
		`{"name":"John","email":"john@example.com","phone":"+254700000000",
		  "inquiry_type":"booking","room_id":"ghost","message":"A long weekend stay."}`)
	if err := h.Create(c); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for the error handler, got %v", err)
	}
}

func TestInquiryHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubInquiryService{
		createFn: func(ctx context.Context, in ports.CreateInquiryInput) (*domain.Inquiry, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/inquiries", "not-json")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestInquiryHandler_List_ForwardsFilters(t *testing.T) {
	stub := &stubInquiryService{
		listFn: func(ctx context.Context, filter ports.InquiryFilter) ([]*domain.Inquiry, int64, error) {
			if filter.Status != "new" || filter.Type != "booking" || filter.Limit != 25 || filter.Offset != 50 {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []*domain.Inquiry{{ID: "inq1"}}, 120, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, rec := newTestContext(http.MethodGet,
		"/api/admin/inquiries?status=new&type=booking&limit=25&offset=50", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(120) {
		t.Fatalf("total = %v, want 120", resp["total"])
	}
}

func TestInquiryHandler_MarkRead(t *testing.T) {
	stub := &stubInquiryService{
		setStatusFn: func(ctx context.Context, id, status string) (*domain.Inquiry, error) {
			if id != "inq1" || status != "read" {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Inquiry{ID: id, Status: domain.InquiryRead}, nil
		},
	}
	h := NewInquiryHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/admin/inquiries/inq1/mark-read", "")
	c.SetParamNames("id")
	c.SetParamValues("inq1")

	if err := h.MarkRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
