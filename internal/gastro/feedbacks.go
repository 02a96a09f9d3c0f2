package gastro

import (
	"context"
	"fmt"
)

// FeedbackService wraps the /feedbacks endpoints.
type FeedbackService struct {
	c *Client
}

func NewFeedbackService(c *Client) *FeedbackService {
	return &FeedbackService{c: c}
}

func (s *FeedbackService) List(ctx context.Context) ([]Feedback, error) {
	var out []Feedback
	if err := s.c.get(ctx, "/feedbacks", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FeedbackService) Get(ctx context.Context, id int) (Feedback, error) {
	var out Feedback
	if err := s.c.get(ctx, fmt.Sprintf("/feedbacks/%d", id), &out); err != nil {
		return Feedback{}, err
	}
	return out, nil
}

func (s *FeedbackService) Create(ctx context.Context, f Feedback) (Feedback, error) {
	var out Feedback
	if err := s.c.post(ctx, "/feedbacks", f, &out); err != nil {
		return Feedback{}, err
	}
	return out, nil
}

func (s *FeedbackService) Update(ctx context.Context, id int, f Feedback) (Feedback, error) {
	var out Feedback
	if err := s.c.put(ctx, fmt.Sprintf("/feedbacks/%d", id), f, &out); err != nil {
		return Feedback{}, err
	}
	return out, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/feedbacks/%d", id))
}
