package ports

import (
	"context"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// CreateRoomInput carries the admin room-creation payload. Pointer fields
// distinguish "absent" from zero values during required-field checks.
type CreateRoomInput struct {
	Name              string
	Slug              string
	Type              string
	Description       string
	Capacity          *int
	PricePerNight     *int
	BreakfastIncluded *bool
	Amenities         []string
	Images            []string
	IsFeatured        *bool
}

// UpdateRoomInput is a partial update; nil fields are left untouched.
type UpdateRoomInput struct {
	Name              *string
	Slug              *string
	Type              *string
	Description       *string
	Capacity          *int
	PricePerNight     *int
	BreakfastIncluded *bool
	IsFeatured        *bool
	IsActive          *bool
	Amenities         *[]string
	Images            *[]string
}

// RoomService covers both public listing and admin management of rooms.
type RoomService interface {
	ListActive(ctx context.Context) ([]*domain.Room, error)
	ListFeatured(ctx context.Context) ([]*domain.Room, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Room, error)
	ListByType(ctx context.Context, roomType string) ([]*domain.Room, error)

	AdminList(ctx context.Context, filter RoomAdminFilter) ([]*domain.Room, error)
	AdminGet(ctx context.Context, id string) (*domain.Room, error)
	Create(ctx context.Context, in CreateRoomInput) (*domain.Room, error)
	Update(ctx context.Context, id string, in UpdateRoomInput) (*domain.Room, error)
	Deactivate(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (*domain.Room, error)
	ToggleFeatured(ctx context.Context, id string) (*domain.Room, error)
}
