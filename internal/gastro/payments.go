package gastro

import (
	"context"
	"fmt"
)

// PaymentService wraps the /pagamentos endpoints. The backend exposes no
// payment delete.
type PaymentService struct {
	c *Client
}

func NewPaymentService(c *Client) *PaymentService {
	return &PaymentService{c: c}
}

func (s *PaymentService) List(ctx context.Context) ([]Payment, error) {
	var out []Payment
	if err := s.c.get(ctx, "/pagamentos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PaymentService) Get(ctx context.Context, id int) (Payment, error) {
	var out Payment
	if err := s.c.get(ctx, fmt.Sprintf("/pagamentos/%d", id), &out); err != nil {
		return Payment{}, err
	}
	return out, nil
}

// GetByOrder returns the payment settling the given order, 404 when the
// order is still open.
func (s *PaymentService) GetByOrder(ctx context.Context, orderID int) (Payment, error) {
	var out Payment
	if err := s.c.get(ctx, fmt.Sprintf("/pagamentos/por-pedido/%d", orderID), &out); err != nil {
		return Payment{}, err
	}
	return out, nil
}

func (s *PaymentService) Create(ctx context.Context, p Payment) (Payment, error) {
	var out Payment
	if err := s.c.post(ctx, "/pagamentos", p, &out); err != nil {
		return Payment{}, err
	}
	return out, nil
}

func (s *PaymentService) Update(ctx context.Context, id int, p Payment) (Payment, error) {
	var out Payment
	if err := s.c.put(ctx, fmt.Sprintf("/pagamentos/%d", id), p, &out); err != nil {
		return Payment{}, err
	}
	return out, nil
}
