package gastro

import (
	"context"
	"fmt"
)

// ItemService wraps the /itens catalog endpoints.
type ItemService struct {
	c *Client
}

func NewItemService(c *Client) *ItemService {
	return &ItemService{c: c}
}

func (s *ItemService) List(ctx context.Context) ([]MenuItem, error) {
	var out []MenuItem
	if err := s.c.get(ctx, "/itens", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ItemService) Get(ctx context.Context, id int) (MenuItem, error) {
	var out MenuItem
	if err := s.c.get(ctx, fmt.Sprintf("/itens/%d", id), &out); err != nil {
		return MenuItem{}, err
	}
	return out, nil
}

func (s *ItemService) Create(ctx context.Context, item MenuItem) (MenuItem, error) {
	var out MenuItem
	if err := s.c.post(ctx, "/itens", item, &out); err != nil {
		return MenuItem{}, err
	}
	return out, nil
}

func (s *ItemService) Update(ctx context.Context, id int, item MenuItem) (MenuItem, error) {
	var out MenuItem
	if err := s.c.put(ctx, fmt.Sprintf("/itens/%d", id), item, &out); err != nil {
		return MenuItem{}, err
	}
	return out, nil
}

func (s *ItemService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/itens/%d", id))
}
