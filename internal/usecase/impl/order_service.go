package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns a single order owned by the user.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// CreateOrder places an order. The total price is the product's current price
// times the quantity, computed here and persisted; any client-supplied total
// is ignored at the delivery layer.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be greater than zero")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	order := &entity.Order{
		ProductID:  input.ProductID,
		UserID:     userID,
		Quantity:   input.Quantity,
		TotalPrice: snapshotTotal(product.Price, input.Quantity),
		Status:     entity.OrderStatusPending,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}
	order.Product = product

	srv.log(ctx).Debug("Order created", slog.Any("orderID", order.ID), slog.Any("userID", userID))

	return order, nil
}

// UpdateOrder applies a partial update to an order owned by the user. The
// total is recomputed from the resolved product's current price on every
// update, so even a status-only change refreshes the snapshot.
func (srv *orderService) UpdateOrder(ctx context.Context, userID, orderID uuid.UUID, input usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if input.Status != nil {
		status := entity.OrderStatus(*input.Status)
		if !status.Valid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
		}
		order.Status = status
	}
	if input.ProductID != nil {
		order.ProductID = *input.ProductID
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be greater than zero")
		}
		order.Quantity = *input.Quantity
	}

	product, err := srv.productRepo.FindByID(ctx, order.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	order.TotalPrice = snapshotTotal(product.Price, order.Quantity)

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	updated, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	return updated, nil
}

// DeleteOrder removes an order owned by the user.
func (srv *orderService) DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	if err := srv.orderRepo.DeleteForUser(ctx, orderID, userID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Debug("Order deleted", slog.Any("orderID", orderID), slog.Any("userID", userID))

	return nil
}

func snapshotTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
