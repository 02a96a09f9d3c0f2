package gastro

import (
	"context"
	"fmt"
)

// TableService wraps the /mesas endpoints.
type TableService struct {
	c *Client
}

func NewTableService(c *Client) *TableService {
	return &TableService{c: c}
}

func (s *TableService) List(ctx context.Context) ([]Table, error) {
	var out []Table
	if err := s.c.get(ctx, "/mesas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TableService) Get(ctx context.Context, id int) (Table, error) {
	var out Table
	if err := s.c.get(ctx, fmt.Sprintf("/mesas/%d", id), &out); err != nil {
		return Table{}, err
	}
	return out, nil
}

func (s *TableService) Create(ctx context.Context, t Table) (Table, error) {
	var out Table
	if err := s.c.post(ctx, "/mesas", t, &out); err != nil {
		return Table{}, err
	}
	return out, nil
}

func (s *TableService) Update(ctx context.Context, id int, t Table) (Table, error) {
	var out Table
	if err := s.c.put(ctx, fmt.Sprintf("/mesas/%d", id), t, &out); err != nil {
		return Table{}, err
	}
	return out, nil
}

func (s *TableService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/mesas/%d", id))
}
