package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
	"github.com/wimaserenity/gardens-api/internal/core/validate"
)

// RoomService covers the public room catalogue and admin room management.
type RoomService struct {
	rooms ports.RoomRepository
	log   zerolog.Logger
}

func NewRoomService(rooms ports.RoomRepository, log zerolog.Logger) *RoomService {
	return &RoomService{rooms: rooms, log: log}
}

func (s *RoomService) ListActive(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.ListActive(ctx)
}

func (s *RoomService) ListFeatured(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.ListFeatured(ctx)
}

// GetBySlug resolves an active room for the public detail page.
func (s *RoomService) GetBySlug(ctx context.Context, slug string) (*domain.Room, error) {
	slug = validate.Sanitize(slug, 100)
	if slug == "" {
		return nil, domain.ErrRoomNotFound
	}
	return s.rooms.FindActiveBySlug(ctx, slug)
}

func (s *RoomService) ListByType(ctx context.Context, roomType string) ([]*domain.Room, error) {
	rt := domain.RoomType(validate.Sanitize(roomType, 50))
	if !rt.Valid() {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"Invalid room type. Must be one of: %s", validate.AllowedRoomTypes()))
	}
	return s.rooms.ListActiveByType(ctx, rt)
}

func (s *RoomService) AdminList(ctx context.Context, filter ports.RoomAdminFilter) ([]*domain.Room, error) {
	return s.rooms.ListAdmin(ctx, filter)
}

// AdminGet resolves a room by id regardless of its active flag.
func (s *RoomService) AdminGet(ctx context.Context, id string) (*domain.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

// Create validates and persists a new room.
func (s *RoomService) Create(ctx context.Context, in ports.CreateRoomInput) (*domain.Room, error) {
	data := map[string]any{
		"name":        in.Name,
		"slug":        in.Slug,
		"type":        in.Type,
		"description": in.Description,
	}
	if in.Capacity != nil {
		data["capacity"] = *in.Capacity
	}
	if in.PricePerNight != nil {
		data["price_per_night"] = *in.PricePerNight
	}
	missing := validate.MissingFields(data, []string{
		"name", "slug", "type", "description", "capacity", "price_per_night",
	})
	if len(missing) > 0 {
		return nil, validate.MissingFieldsError(missing)
	}

	name := validate.Sanitize(in.Name, 100)
	slug := domain.Slugify(validate.Sanitize(in.Slug, 100))
	description := validate.Sanitize(in.Description, 2000)

	roomType := domain.RoomType(validate.Sanitize(in.Type, 50))
	if !roomType.Valid() {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"Invalid room type. Must be one of: %s", validate.AllowedRoomTypes()))
	}

	if exists, err := s.rooms.SlugExists(ctx, slug, ""); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.NewValidationError(fmt.Sprintf("Room with slug %q already exists", slug))
	}

	capacity := *in.Capacity
	if capacity < domain.RoomMinCapacity || capacity > domain.RoomMaxCapacity {
		return nil, domain.NewValidationError("Capacity must be a number between 1 and 20")
	}
	price := *in.PricePerNight
	if price < 0 {
		return nil, domain.NewValidationError("Price per night must be a positive number")
	}

	breakfast := true
	if in.BreakfastIncluded != nil {
		breakfast = *in.BreakfastIncluded
	}
	featured := false
	if in.IsFeatured != nil {
		featured = *in.IsFeatured
	}

	now := time.Now().UTC()
	room := &domain.Room{
		Name:              name,
		Slug:              slug,
		Type:              roomType,
		Description:       description,
		Capacity:          capacity,
		PricePerNight:     price,
		BreakfastIncluded: breakfast,
		Amenities:         orEmpty(in.Amenities),
		Images:            orEmpty(in.Images),
		IsFeatured:        featured,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("room_id", created.ID).Str("slug", slug).Msg("room created")
	return created, nil
}

// Update applies a partial room update; nil fields are untouched.
func (s *RoomService) Update(ctx context.Context, id string, in ports.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		room.Name = validate.Sanitize(*in.Name, 100)
	}
	if in.Slug != nil {
		slug := domain.Slugify(validate.Sanitize(*in.Slug, 100))
		exists, err := s.rooms.SlugExists(ctx, slug, room.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewValidationError(fmt.Sprintf("Room with slug %q already exists", slug))
		}
		room.Slug = slug
	}
	if in.Type != nil {
		rt := domain.RoomType(validate.Sanitize(*in.Type, 50))
		if !rt.Valid() {
			return nil, domain.NewValidationError(fmt.Sprintf(
				"Invalid room type. Must be one of: %s", validate.AllowedRoomTypes()))
		}
		room.Type = rt
	}
	if in.Description != nil {
		room.Description = validate.Sanitize(*in.Description, 2000)
	}
	if in.Capacity != nil {
		if *in.Capacity < domain.RoomMinCapacity || *in.Capacity > domain.RoomMaxCapacity {
			return nil, domain.NewValidationError("Capacity must be a number between 1 and 20")
		}
		room.Capacity = *in.Capacity
	}
	if in.PricePerNight != nil {
		if *in.PricePerNight < 0 {
			return nil, domain.NewValidationError("Price per night must be a positive number")
		}
		room.PricePerNight = *in.PricePerNight
	}
	if in.BreakfastIncluded != nil {
		room.BreakfastIncluded = *in.BreakfastIncluded
	}
	if in.IsFeatured != nil {
		room.IsFeatured = *in.IsFeatured
	}
	if in.IsActive != nil {
		room.IsActive = *in.IsActive
	}
	if in.Amenities != nil {
		room.Amenities = orEmpty(*in.Amenities)
	}
	if in.Images != nil {
		room.Images = orEmpty(*in.Images)
	}

	room.UpdatedAt = time.Now().UTC()
	updated, err := s.rooms.Update(ctx, room)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("room_id", room.ID).Msg("room updated")
	return updated, nil
}

// Deactivate soft-deletes a room: it drops out of public listings but stays
// resolvable for admins and historical inquiries.
func (s *RoomService) Deactivate(ctx context.Context, id string) error {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return err
	}
	room.IsActive = false
	room.UpdatedAt = time.Now().UTC()
	if _, err := s.rooms.Update(ctx, room); err != nil {
		return err
	}
	s.log.Info().Str("room_id", id).Msg("room deactivated")
	return nil
}

// Activate returns a deactivated room to service.
func (s *RoomService) Activate(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.IsActive = true
	room.UpdatedAt = time.Now().UTC()
	updated, err := s.rooms.Update(ctx, room)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("room_id", id).Msg("room activated")
	return updated, nil
}

// ToggleFeatured flips the homepage-featured flag.
func (s *RoomService) ToggleFeatured(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	room.IsFeatured = !room.IsFeatured
	room.UpdatedAt = time.Now().UTC()
	return s.rooms.Update(ctx, room)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
