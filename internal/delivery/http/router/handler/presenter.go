package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// View types returned to clients. Stored image keys are resolved to public
// URLs here so nothing above the delivery layer knows about bucket layout.

type userView struct {
	ID         uuid.UUID    `json:"id"`
	Username   string       `json:"username"`
	Email      string       `json:"email"`
	FirstName  string       `json:"first_name"`
	LastName   string       `json:"last_name"`
	IsVerified bool         `json:"is_verified"`
	IsActive   bool         `json:"is_active"`
	JoinedAt   time.Time    `json:"joined_at"`
	Profile    *profileView `json:"profile,omitempty"`
}

type profileView struct {
	UserID    uuid.UUID  `json:"user_id"`
	Image     string     `json:"image"`
	Bio       string     `json:"bio"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birth_date"`
	Address   string     `json:"address"`
	Telegram  string     `json:"telegram"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type productView struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	BrandID     *uuid.UUID         `json:"brand_id,omitempty"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Ram         string             `json:"ram,omitempty"`
	Color       string             `json:"color,omitempty"`
	Price       decimal.Decimal    `json:"price"`
	Stock       int                `json:"stock"`
	IsAvailable bool               `json:"is_available"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Brand       *brandView         `json:"brand,omitempty"`
	Images      []productImageView `json:"images,omitempty"`
}

type brandView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	CreatedAt   time.Time `json:"created_at"`
}

type productImageView struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Image     string    `json:"image"`
}

type likeView struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"product_id"`
	UserID    uuid.UUID    `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
	Product   *productView `json:"product,omitempty"`
}

type orderView struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	UserID     uuid.UUID       `json:"user_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	Product    *productView    `json:"product,omitempty"`
}

func newUserView(user *entity.User, storage service.ImageStorage) userView {
	view := userView{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		IsVerified: user.IsVerified,
		IsActive:   user.IsActive,
		JoinedAt:   user.JoinedAt,
	}
	if user.Profile != nil {
		profile := newProfileView(user.Profile, storage)
		view.Profile = &profile
	}

	return view
}

func newProfileView(profile *entity.UserProfile, storage service.ImageStorage) profileView {
	return profileView{
		UserID:    profile.UserID,
		Image:     resolveKey(profile.Image, storage),
		Bio:       profile.Bio,
		Phone:     profile.Phone,
		BirthDate: profile.BirthDate,
		Address:   profile.Address,
		Telegram:  profile.Telegram,
		UpdatedAt: profile.UpdatedAt,
	}
}

func newProductView(product *entity.Product, storage service.ImageStorage) productView {
	view := productView{
		ID:          product.ID,
		UserID:      product.UserID,
		BrandID:     product.BrandID,
		Name:        product.Name,
		Description: product.Description,
		Ram:         product.Ram,
		Color:       product.Color,
		Price:       product.Price,
		Stock:       product.Stock,
		IsAvailable: product.IsAvailable,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Brand != nil {
		brand := newBrandView(product.Brand, storage)
		view.Brand = &brand
	}
	for _, image := range product.Images {
		view.Images = append(view.Images, newProductImageView(image, storage))
	}

	return view
}

func newProductViews(products []*entity.Product, storage service.ImageStorage) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product, storage))
	}

	return views
}

func newBrandView(brand *entity.Brand, storage service.ImageStorage) brandView {
	return brandView{
		ID:          brand.ID,
		Name:        brand.Name,
		Description: brand.Description,
		Logo:        resolveKey(brand.Logo, storage),
		CreatedAt:   brand.CreatedAt,
	}
}

func newBrandViews(brands []*entity.Brand, storage service.ImageStorage) []brandView {
	views := make([]brandView, 0, len(brands))
	for _, brand := range brands {
		views = append(views, newBrandView(brand, storage))
	}

	return views
}

func newProductImageView(image entity.ProductImage, storage service.ImageStorage) productImageView {
	return productImageView{
		ID:        image.ID,
		ProductID: image.ProductID,
		Image:     resolveKey(image.Image, storage),
	}
}

func newProductImageViews(images []*entity.ProductImage, storage service.ImageStorage) []productImageView {
	views := make([]productImageView, 0, len(images))
	for _, image := range images {
		views = append(views, newProductImageView(*image, storage))
	}

	return views
}

func newLikeView(like *entity.Like, storage service.ImageStorage) likeView {
	view := likeView{
		ID:        like.ID,
		ProductID: like.ProductID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt,
	}
	if like.Product != nil {
		product := newProductView(like.Product, storage)
		view.Product = &product
	}

	return view
}

func newLikeViews(likes []*entity.Like, storage service.ImageStorage) []likeView {
	views := make([]likeView, 0, len(likes))
	for _, like := range likes {
		views = append(views, newLikeView(like, storage))
	}

	return views
}

func newOrderView(order *entity.Order, storage service.ImageStorage) orderView {
	view := orderView{
		ID:         order.ID,
		ProductID:  order.ProductID,
		UserID:     order.UserID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
	if order.Product != nil {
		product := newProductView(order.Product, storage)
		view.Product = &product
	}

	return view
}

func newOrderViews(orders []*entity.Order, storage service.ImageStorage) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order, storage))
	}

	return views
}

func resolveKey(key string, storage service.ImageStorage) string {
	if key == "" {
		return ""
	}

	return storage.Resolve(key)
}
