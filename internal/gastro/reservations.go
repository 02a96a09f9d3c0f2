package gastro

import (
	"context"
	"fmt"
	"net/url"
)

// ReservationService wraps the /reservas endpoints.
type ReservationService struct {
	c *Client
}

func NewReservationService(c *Client) *ReservationService {
	return &ReservationService{c: c}
}

func (s *ReservationService) List(ctx context.Context) ([]Reservation, error) {
	var out []Reservation
	if err := s.c.get(ctx, "/reservas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByDate returns reservations for one day. date is YYYY-MM-DD.
func (s *ReservationService) ListByDate(ctx context.Context, date string) ([]Reservation, error) {
	var out []Reservation
	path := "/reservas/por-data?data=" + url.QueryEscape(date)
	if err := s.c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReservationService) Get(ctx context.Context, id int) (Reservation, error) {
	var out Reservation
	if err := s.c.get(ctx, fmt.Sprintf("/reservas/%d", id), &out); err != nil {
		return Reservation{}, err
	}
	return out, nil
}

func (s *ReservationService) Create(ctx context.Context, r Reservation) (Reservation, error) {
	var out Reservation
	if err := s.c.post(ctx, "/reservas", r, &out); err != nil {
		return Reservation{}, err
	}
	return out, nil
}

func (s *ReservationService) Update(ctx context.Context, id int, r Reservation) (Reservation, error) {
	var out Reservation
	if err := s.c.put(ctx, fmt.Sprintf("/reservas/%d", id), r, &out); err != nil {
		return Reservation{}, err
	}
	return out, nil
}

func (s *ReservationService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/reservas/%d", id))
}
