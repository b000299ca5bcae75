package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// imageFormField is the multipart field carrying the uploaded file.
const imageFormField = "image"

// ProductImageHandler holds dependencies for product image handlers.
type ProductImageHandler struct {
	uc      usecase.ImageUsecase
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewProductImageHandler is the constructor for ProductImageHandler, injected by Fx.
func NewProductImageHandler(uc usecase.ImageUsecase, storage service.ImageStorage, logger *slog.Logger) *ProductImageHandler {
	return &ProductImageHandler{
		uc:      uc,
		storage: storage,
		logger:  logger,
	}
}

// List returns every product image.
func (h *ProductImageHandler) List(c echo.Context) error {
	images, err := h.uc.ListImages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductImageViews(images, h.storage), "Images retrieved successfully")
}

// Get returns a single product image.
func (h *ProductImageHandler) Get(c echo.Context) error {
	imageID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	image, err := h.uc.GetImage(c.Request().Context(), imageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductImageView(*image, h.storage), "Image retrieved successfully")
}

// Create stores an uploaded file and attaches it to a product owned by the
// caller. Expects multipart form data with "product_id" and "image" fields.
func (h *ProductImageHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.FormValue("product_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing product_id")
	}

	upload, err := readUpload(c)
	if err != nil {
		return err
	}

	image, err := h.uc.AddImage(c.Request().Context(), userID, productID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductImageView(*image, h.storage), "Image uploaded successfully")
}

// Update replaces the stored file of an image owned by the caller.
func (h *ProductImageHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	imageID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	upload, err := readUpload(c)
	if err != nil {
		return err
	}

	image, err := h.uc.ReplaceImage(c.Request().Context(), userID, imageID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductImageView(*image, h.storage), "Image replaced successfully")
}

// Delete removes an image owned by the caller along with its stored file.
func (h *ProductImageHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	imageID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteImage(c.Request().Context(), userID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted successfully")
}

// readUpload pulls the image file out of the multipart form.
func readUpload(c echo.Context) (usecase.UploadImageInput, error) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return usecase.UploadImageInput{}, echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}

	data, contentType, err := readFileHeader(fileHeader)
	if err != nil {
		return usecase.UploadImageInput{}, err
	}

	return usecase.UploadImageInput{
		Data:        data,
		ContentType: contentType,
	}, nil
}

func readFileHeader(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read uploaded file")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return data, contentType, nil
}
