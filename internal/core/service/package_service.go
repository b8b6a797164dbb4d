package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
	"github.com/wimaserenity/gardens-api/internal/core/validate"
)

// PackageService exposes the public package catalogue.
type PackageService struct {
	packages ports.PackageRepository
	log      zerolog.Logger
}

func NewPackageService(packages ports.PackageRepository, log zerolog.Logger) *PackageService {
	return &PackageService{packages: packages, log: log}
}

func (s *PackageService) ListActive(ctx context.Context) ([]*domain.Package, error) {
	pkgs, err := s.packages.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("count", len(pkgs)).Msg("fetched active packages")
	return pkgs, nil
}

func (s *PackageService) ListFeatured(ctx context.Context) ([]*domain.Package, error) {
	return s.packages.ListFeatured(ctx)
}

func (s *PackageService) GetBySlug(ctx context.Context, slug string) (*domain.Package, error) {
	slug = validate.Sanitize(slug, 100)
	if slug == "" {
		return nil, domain.ErrPackageNotFound
	}
	return s.packages.FindActiveBySlug(ctx, slug)
}
