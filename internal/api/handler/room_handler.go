package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

// RoomHandler serves the public room catalogue and the admin room management
// operations.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

type createRoomRequest struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	Capacity          *int     `json:"capacity"`
	PricePerNight     *int     `json:"price_per_night"`
	BreakfastIncluded *bool    `json:"breakfast_included"`
	Amenities         []string `json:"amenities"`
	Images            []string `json:"images"`
	IsFeatured        *bool    `json:"is_featured"`
}

type updateRoomRequest struct {
	Name              *string   `json:"name"`
	Slug              *string   `json:"slug"`
	Type              *string   `json:"type"`
	Description       *string   `json:"description"`
	Capacity          *int      `json:"capacity"`
	PricePerNight     *int      `json:"price_per_night"`
	BreakfastIncluded *bool     `json:"breakfast_included"`
	IsFeatured        *bool     `json:"is_featured"`
	IsActive          *bool     `json:"is_active"`
	Amenities         *[]string `json:"amenities"`
	Images            *[]string `json:"images"`
}

// List returns all active rooms.
//
// @Summary      List active rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// Featured returns active rooms flagged as featured.
//
// @Summary      List featured rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/rooms/featured [get]
func (h *RoomHandler) Featured(c echo.Context) error {
	rooms, err := h.service.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// GetBySlug returns one active room.
//
// @Summary      Get a room by slug
// @Tags         rooms
// @Produce      json
// @Param        slug  path      string  true  "Room slug"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/rooms/{slug} [get]
func (h *RoomHandler) GetBySlug(c echo.Context) error {
	room, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"room": room})
}

// ByType returns active rooms of one type.
//
// @Summary      List rooms by type
// @Tags         rooms
// @Produce      json
// @Param        type  path      string  true  "Room type"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Router       /api/rooms/type/{type} [get]
func (h *RoomHandler) ByType(c echo.Context) error {
	rooms, err := h.service.ListByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// AdminList returns rooms for the admin panel, inactive ones included by
// default.
//
// @Summary      List rooms (admin)
// @Tags         admin-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        include_inactive  query     bool    false  "Include deactivated rooms (default true)"
// @Param        type              query     string  false  "Filter by room type"
// @Success      200  {object}  map[string]any
// @Router       /api/admin/rooms [get]
func (h *RoomHandler) AdminList(c echo.Context) error {
	includeInactive := true
	if raw := c.QueryParam("include_inactive"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			includeInactive = v
		}
	}

	rooms, err := h.service.AdminList(c.Request().Context(), ports.RoomAdminFilter{
		IncludeInactive: includeInactive,
		Type:            c.QueryParam("type"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"rooms": rooms, "count": len(rooms)})
}

// AdminGet returns one room by id, active or not.
//
// @Summary      Get a room (admin)
// @Tags         admin-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Room id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/rooms/{id} [get]
func (h *RoomHandler) AdminGet(c echo.Context) error {
	room, err := h.service.AdminGet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"room": room})
}

// Create adds a new room. Manager or above.
//
// @Summary      Create a room
// @Tags         admin-rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Router       /api/admin/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	room, err := h.service.Create(c.Request().Context(), ports.CreateRoomInput{
		Name:              req.Name,
		Slug:              req.Slug,
		Type:              req.Type,
		Description:       req.Description,
		Capacity:          req.Capacity,
		PricePerNight:     req.PricePerNight,
		BreakfastIncluded: req.BreakfastIncluded,
		Amenities:         req.Amenities,
		Images:            req.Images,
		IsFeatured:        req.IsFeatured,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, echo.Map{"room": room})
}

// Update applies a partial update. Manager or above.
//
// @Summary      Update a room
// @Tags         admin-rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Room id"
// @Param        body  body      updateRoomRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/admin/rooms/{id} [patch]
func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	room, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateRoomInput{
		Name:              req.Name,
		Slug:              req.Slug,
		Type:              req.Type,
		Description:       req.Description,
		Capacity:          req.Capacity,
		PricePerNight:     req.PricePerNight,
		BreakfastIncluded: req.BreakfastIncluded,
		IsFeatured:        req.IsFeatured,
		IsActive:          req.IsActive,
		Amenities:         req.Amenities,
		Images:            req.Images,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"room": room})
}

// Deactivate soft-deletes a room. Admin only; the row stays for historical
// inquiries.
//
// @Summary      Deactivate a room
// @Tags         admin-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Room id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/rooms/{id} [delete]
func (h *RoomHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"message": "room deactivated"})
}

// Activate restores a deactivated room. Manager or above.
//
// @Summary      Activate a room
// @Tags         admin-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Room id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/rooms/{id}/activate [post]
func (h *RoomHandler) Activate(c echo.Context) error {
	room, err := h.service.Activate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"room": room})
}

// ToggleFeatured flips the featured flag. Manager or above.
//
// @Summary      Toggle a room's featured flag
// @Tags         admin-rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Room id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/admin/rooms/{id}/toggle-featured [post]
func (h *RoomHandler) ToggleFeatured(c echo.Context) error {
	room, err := h.service.ToggleFeatured(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"room": room})
}
