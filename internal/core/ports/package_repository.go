package ports

import (
	"context"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

// PackageRepository persists bookable packages.
type PackageRepository interface {
	ListActive(ctx context.Context) ([]*domain.Package, error)
	ListFeatured(ctx context.Context) ([]*domain.Package, error)
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Package, error)
}

// PackageService exposes the public package catalogue.
type PackageService interface {
	ListActive(ctx context.Context) ([]*domain.Package, error)
	ListFeatured(ctx context.Context) ([]*domain.Package, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Package, error)
}
