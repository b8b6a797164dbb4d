package ports

import (
	"context"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// RoomAdminFilter narrows the admin room listing.
type RoomAdminFilter struct {
	IncludeInactive bool
	Type            string
}

// RoomRepository persists rooms. Deactivation is a flag flip; rows referenced
// by inquiries are never removed.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	// FindActiveBySlug resolves only active rooms; public detail pages use it.
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Room, error)
	ListActive(ctx context.Context) ([]*domain.Room, error)
	ListFeatured(ctx context.Context) ([]*domain.Room, error)
	ListActiveByType(ctx context.Context, roomType domain.RoomType) ([]*domain.Room, error)
	ListAdmin(ctx context.Context, filter RoomAdminFilter) ([]*domain.Room, error)
	// SlugExists reports whether another room (excluding excludeID, which may
	// be empty) already claims slug, active or not.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	CountActive(ctx context.Context) (int64, error)
	CountFeatured(ctx context.Context) (int64, error)
}
