package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wimaserenity/gardens-api/internal/api/metrics"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

// InquiryHandler serves guest inquiry submission and the admin triage
// operations over both inquiry kinds.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type createInquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiry_type"`
	RoomID      string `json:"room_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      *int   `json:"guests"`
	Message     string `json:"message"`
}

type createEventInquiryRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EventType       string `json:"event_type"`
	EventDate       string `json:"event_date"`
	GuestCount      *int   `json:"guest_count"`
	VenuePreference string `json:"venue_preference"`
	Message         string `json:"message"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// Create accepts a guest room inquiry.
//
// @Summary      Submit an inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      createInquiryRequest  true  "Inquiry details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	inq, err := h.service.Create(c.Request().Context(), ports.CreateInquiryInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
		RoomID:      req.RoomID,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      req.Guests,
		Message:     req.Message,
	})
	if err != nil {
		return err
	}

	metrics.InquiriesCreatedTotal.WithLabelValues(string(inq.InquiryType)).Inc()
	return respond(c, http.StatusCreated, echo.Map{"inquiry": inq})
}

// CreateEvent accepts a guest event venue inquiry.
//
// @Summary      Submit an event inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      createEventInquiryRequest  true  "Event inquiry details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /api/inquiries/event [post]
func (h *InquiryHandler) CreateEvent(c echo.Context) error {
	var req createEventInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	inq, err := h.service.CreateEvent(c.Request().Context(), ports.CreateEventInquiryInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		EventType:       req.EventType,
		EventDate:       req.EventDate,
		GuestCount:      req.GuestCount,
		VenuePreference: req.VenuePreference,
		Message:         req.Message,
	})
	if err != nil {
		return err
	}

	metrics.InquiriesCreatedTotal.WithLabelValues("venue_event").Inc()
	return respond(c, http.StatusCreated, echo.Map{"inquiry": inq})
}

// List returns a page of inquiries for triage.
//
// @Summary      List inquiries
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        type    query     string  false  "Filter by inquiry type"
// @Param        limit   query     int     false  "Page size (default 50, max 200)"
// @Param        offset  query     int     false  "Page offset"
// @Success      200  {object}  map[string]any
// @Router       /api/admin/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, total, err := h.service.List(c.Request().Context(), ports.InquiryFilter{
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiries": inquiries, "total": total})
}

// Get returns one inquiry.
//
// @Summary      Get an inquiry
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/inquiries/{id} [get]
func (h *InquiryHandler) Get(c echo.Context) error {
	inq, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiry": inq})
}

// SetStatus moves an inquiry to the given status.
//
// @Summary      Set inquiry status
// @Tags         admin-inquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Inquiry id"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/admin/inquiries/{id} [patch]
func (h *InquiryHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	inq, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiry": inq})
}

// MarkRead shortcuts PATCH with status "read".
//
// @Summary      Mark an inquiry read
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/inquiries/{id}/mark-read [post]
func (h *InquiryHandler) MarkRead(c echo.Context) error {
	inq, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), "read")
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiry": inq})
}

// MarkReplied shortcuts PATCH with status "replied".
//
// @Summary      Mark an inquiry replied
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/inquiries/{id}/mark-replied [post]
func (h *InquiryHandler) MarkReplied(c echo.Context) error {
	inq, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), "replied")
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiry": inq})
}

// Archive soft-deletes an inquiry.
//
// @Summary      Archive an inquiry
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/inquiries/{id} [delete]
func (h *InquiryHandler) Archive(c echo.Context) error {
	if err := h.service.Archive(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"message": "inquiry archived"})
}

// ListEvents returns a page of event inquiries for triage.
//
// @Summary      List event inquiries
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "Filter by status"
// @Param        event_type  query     string  false  "Filter by event type"
// @Param        limit       query     int     false  "Page size (default 50, max 200)"
// @Param        offset      query     int     false  "Page offset"
// @Success      200  {object}  map[string]any
// @Router       /api/admin/event-inquiries [get]
func (h *InquiryHandler) ListEvents(c echo.Context) error {
	inquiries, total, err := h.service.ListEvents(c.Request().Context(), ports.EventInquiryFilter{
		Status:    c.QueryParam("status"),
		EventType: c.QueryParam("event_type"),
		Limit:     queryInt(c, "limit"),
		Offset:    queryInt(c, "offset"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiries": inquiries, "total": total})
}

// GetEvent returns one event inquiry.
//
// @Summary      Get an event inquiry
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Event inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/event-inquiries/{id} [get]
func (h *InquiryHandler) GetEvent(c echo.Context) error {
	inq, err := h.service.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiry": inq})
}

// SetEventStatus moves an event inquiry to the given status.
//
// @Summary      Set event inquiry status
// @Tags         admin-inquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Event inquiry id"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/admin/event-inquiries/{id} [patch]
func (h *InquiryHandler) SetEventStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	inq, err := h.service.SetEventStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiry": inq})
}

// MarkEventRead shortcuts PATCH with status "read".
//
// @Summary      Mark an event inquiry read
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Event inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/event-inquiries/{id}/mark-read [post]
func (h *InquiryHandler) MarkEventRead(c echo.Context) error {
	inq, err := h.service.SetEventStatus(c.Request().Context(), c.Param("id"), "read")
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiry": inq})
}

// MarkEventReplied shortcuts PATCH with status "replied".
//
// @Summary      Mark an event inquiry replied
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Event inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/event-inquiries/{id}/mark-replied [post]
func (h *InquiryHandler) MarkEventReplied(c echo.Context) error {
	inq, err := h.service.SetEventStatus(c.Request().Context(), c.Param("id"), "replied")
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"inquiry": inq})
}

// ArchiveEvent soft-deletes an event inquiry.
//
// @Summary      Archive an event inquiry
// @Tags         admin-inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Event inquiry id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/event-inquiries/{id} [delete]
func (h *InquiryHandler) ArchiveEvent(c echo.Context) error {
	if err := h.service.ArchiveEvent(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"message": "event inquiry archived"})
}

// queryInt parses an integer query parameter, 0 when absent or malformed.
func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
