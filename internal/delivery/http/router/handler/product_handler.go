package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for catalog product handlers.
type ProductHandler struct {
	uc      usecase.CatalogUsecase
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, storage service.ImageStorage, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:      uc,
		storage: storage,
		logger:  logger,
	}
}

type createProductRequest struct {
	BrandID     *uuid.UUID      `json:"brand_id"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Ram         string          `json:"ram"`
	Color       string          `json:"color"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsAvailable *bool           `json:"is_available"`
}

type updateProductRequest struct {
	BrandID *uuid.UUID `json:"brand_id"`
	// ClearBrand detaches the brand; needed because an absent brand_id and a
	// null brand_id are indistinguishable after JSON binding.
	ClearBrand  bool             `json:"clear_brand"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Ram         *string          `json:"ram"`
	Color       *string          `json:"color"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	IsAvailable *bool            `json:"is_available"`
}

// List returns every product, newest first.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products, h.storage), "Products retrieved successfully")
}

// ListMine returns the caller's products.
func (h *ProductHandler) ListMine(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	products, err := h.uc.ListMyProducts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products, h.storage), "Products retrieved successfully")
}

// Get returns a single product.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product, h.storage), "Product retrieved successfully")
}

// Create lists a new product owned by the caller.
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var input createProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), userID, usecase.CreateProductInput{
		BrandID:     input.BrandID,
		Name:        input.Name,
		Description: input.Description,
		Ram:         input.Ram,
		Color:       input.Color,
		Price:       input.Price,
		Stock:       input.Stock,
		IsAvailable: input.IsAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product, h.storage), "Product created successfully")
}

// Update applies a partial update to a product owned by the caller.
func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input updateProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), userID, productID, usecase.UpdateProductInput{
		BrandID:     input.BrandID,
		ClearBrand:  input.ClearBrand,
		Name:        input.Name,
		Description: input.Description,
		Ram:         input.Ram,
		Color:       input.Color,
		Price:       input.Price,
		Stock:       input.Stock,
		IsAvailable: input.IsAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product, h.storage), "Product updated successfully")
}

// Delete removes a product owned by the caller.
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
