package services

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"food-delivery-api/models"
	"food-delivery-api/storage"
)

// OrderService validates order requests and persists orders with a
// server-computed total. The per-item prices in the request are accepted
// as-is; only the aggregate is never client-supplied.
type OrderService struct {
	orders   storage.OrderStore
	validate *validator.Validate
}

func NewOrderService(orders storage.OrderStore) *OrderService {
	return &OrderService{
		orders:   orders,
		validate: newValidator(),
	}
}

func (s *OrderService) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, translateValidation(err)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var total float64
	for _, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		items = append(items, models.OrderItem{
			MenuItemId: item.MenuItemId,
			Name:       item.Name,
			Quantity:   quantity,
			Price:      *item.Price,
		})
		total += *item.Price * float64(quantity)
	}

	order := &models.Order{
		RestaurantId: req.RestaurantId,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Phone:        req.Phone,
		Items:        items,
		Total:        toFixed(total, 2),
		Status:       models.OrderStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return s.orders.FindByID(ctx, orderID)
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func toFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}
