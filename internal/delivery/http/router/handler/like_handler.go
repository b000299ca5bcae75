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
)

// LikeHandler holds dependencies for like handlers.
type LikeHandler struct {
	uc      usecase.LikeUsecase
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, storage service.ImageStorage, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{
		uc:      uc,
		storage: storage,
		logger:  logger,
	}
}

type toggleLikeRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

type toggleLikeResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Liked     bool      `json:"liked"`
}

// List returns the caller's likes, newest first.
func (h *LikeHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	likes, err := h.uc.ListLikes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLikeViews(likes, h.storage), "Likes retrieved successfully")
}

// Toggle flips the caller's like on a product and reports the end state.
func (h *LikeHandler) Toggle(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var input toggleLikeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}
	if input.ProductID == uuid.Nil {
		return response.BadRequest(c, "INVALID_INPUT", "product_id is required")
	}

	result, err := h.uc.ToggleLike(c.Request().Context(), userID, input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toggleLikeResponse{
		ProductID: result.ProductID,
		Liked:     result.Liked,
	}, "Like toggled successfully")
}
