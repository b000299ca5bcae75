package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// birthDateLayout is the wire format for the profile birth date.
const birthDateLayout = "2006-01-02"

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc      usecase.ProfileUsecase
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, storage service.ImageStorage, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:      uc,
		storage: storage,
		logger:  logger,
	}
}

type updateProfileRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`

	Image     *string `json:"image"`
	Bio       *string `json:"bio"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birth_date"` // "2006-01-02"
	Address   *string `json:"address"`
	Telegram  *string `json:"telegram"`
}

// GetProfile returns the caller's account with the profile attached, creating
// an empty profile on first access.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user, h.storage), "Profile retrieved successfully")
}

// UpdateProfile applies a partial update across the account and profile rows.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var input updateProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	update := usecase.UpdateProfileInput{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Image:     input.Image,
		Bio:       input.Bio,
		Phone:     input.Phone,
		Address:   input.Address,
		Telegram:  input.Telegram,
	}
	if input.BirthDate != nil {
		birthDate, err := time.Parse(birthDateLayout, *input.BirthDate)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid birth_date, expected YYYY-MM-DD")
		}
		update.BirthDate = &birthDate
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user, h.storage), "Profile updated successfully")
}
