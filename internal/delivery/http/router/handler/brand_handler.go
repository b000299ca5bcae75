package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BrandHandler holds dependencies for brand handlers. Brands are read-only
// through the API; rows are administered out of band.
type BrandHandler struct {
	uc      usecase.CatalogUsecase
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewBrandHandler is the constructor for BrandHandler, injected by Fx.
func NewBrandHandler(uc usecase.CatalogUsecase, storage service.ImageStorage, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{
		uc:      uc,
		storage: storage,
		logger:  logger,
	}
}

// List returns every brand ordered by name.
func (h *BrandHandler) List(c echo.Context) error {
	brands, err := h.uc.ListBrands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBrandViews(brands, h.storage), "Brands retrieved successfully")
}

// Get returns a single brand.
func (h *BrandHandler) Get(c echo.Context) error {
	brandID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	brand, err := h.uc.GetBrand(c.Request().Context(), brandID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newBrandView(brand, h.storage), "Brand retrieved successfully")
}
