package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
	"github.com/wimaserenity/gardens-api/internal/core/ports"
)

// PackageHandler serves the public package catalogue.
type PackageHandler struct {
	service ports.PackageService
}

func NewPackageHandler(service ports.PackageService) *PackageHandler {
	return &PackageHandler{service: service}
}

// packageView decorates a package with its derived pricing fields.
type packageView struct {
	*domain.Package
	Savings            int `json:"savings"`
	DiscountPercentage int `json:"discount_percentage"`
}

func toPackageView(p *domain.Package) packageView {
	return packageView{
		Package:            p,
		Savings:            p.Savings(),
		DiscountPercentage: p.DiscountPercentage(),
	}
}

func toPackageViews(pkgs []*domain.Package) []packageView {
	views := make([]packageView, 0, len(pkgs))
	for _, p := range pkgs {
		views = append(views, toPackageView(p))
	}
	return views
}

// List returns all active packages.
//
// @Summary      List active packages
// @Tags         packages
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/packages [get]
func (h *PackageHandler) List(c echo.Context) error {
	pkgs, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"packages": toPackageViews(pkgs), "count": len(pkgs)})
}

// Featured returns active packages flagged as featured.
//
// @Summary      List featured packages
// @Tags         packages
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/packages/featured [get]
func (h *PackageHandler) Featured(c echo.Context) error {
	pkgs, err := h.service.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"packages": toPackageViews(pkgs), "count": len(pkgs)})
}

// GetBySlug returns one active package.
//
// @Summary      Get a package by slug
// @Tags         packages
// @Produce      json
// @Param        slug  path      string  true  "Package slug"
// @Success      200   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/packages/{slug} [get]
func (h *PackageHandler) GetBySlug(c echo.Context) error {
	pkg, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, echo.Map{"package": toPackageView(pkg)})
}
