package gastro

import (
	"context"
	"fmt"
)

// OrderService wraps the /pedidos endpoints.
type OrderService struct {
	c *Client
}

func NewOrderService(c *Client) *OrderService {
	return &OrderService{c: c}
}

func (s *OrderService) List(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := s.c.get(ctx, "/pedidos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUnpaid returns orders that have not been paid yet, used by the payment
// screen to offer open orders.
func (s *OrderService) ListUnpaid(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := s.c.get(ctx, "/pedidos/nao-pagos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (Order, error) {
	var out Order
	if err := s.c.get(ctx, fmt.Sprintf("/pedidos/%d", id), &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (s *OrderService) Create(ctx context.Context, o Order) (Order, error) {
	var out Order
	if err := s.c.post(ctx, "/pedidos", o, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (s *OrderService) Update(ctx context.Context, id int, o Order) (Order, error) {
	var out Order
	if err := s.c.put(ctx, fmt.Sprintf("/pedidos/%d", id), o, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/pedidos/%d", id))
}
