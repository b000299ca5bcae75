package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
// Every query carries the owning user's ID; there is no unscoped read path.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByUser retrieves the orders of the given user, newest first, with the
// ordered product preloaded.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Brand").
		Preload("Product.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// FindByIDForUser retrieves a single order only if it is owned by the given user.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Brand").
		Preload("Product.Images").
		Where("id = ? AND user_id = ?", id, userID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for user")
	}

	return toOrderDomain(&orderM), nil
}

// Create persists a new order with its precomputed total price.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// Update modifies an order, constrained to rows owned by order.UserID.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND user_id = ?", order.ID, order.UserID).
		Select("product_id", "quantity", "total_price", "status").
		Updates(orderM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteForUser removes an order only if it is owned by the given user.
func (repo *orderRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.OrderModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:         data.ID,
		ProductID:  data.ProductID,
		UserID:     data.UserID,
		Quantity:   data.Quantity,
		TotalPrice: data.TotalPrice,
		Status:     entity.OrderStatus(data.Status),
		CreatedAt:  data.CreatedAt,
	}
	if data.Product != nil {
		order.Product = toProductDomain(data.Product)
	}

	return order
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:         order.ID,
		ProductID:  order.ProductID,
		UserID:     order.UserID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
	}
}
