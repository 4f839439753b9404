package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/pkg/validator"
)

func (s *Service) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags, err := s.client.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

// CreateTag creates a tag and returns the reloaded tag list.
func (s *Service) CreateTag(ctx context.Context, name, color string) ([]*model.Tag, error) {
	v := validator.New()
	name = strings.TrimSpace(name)
	color = strings.TrimSpace(color)
	v.Check(name != "", "name", "must be provided")
	v.Check(color == "" || validator.Matches(color, validator.HexRX), "color", "must be a hex color like #FFCC00")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.client.CreateTag(ctx, name, color); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	return s.ListTags(ctx)
}

func (s *Service) SetTaskTags(ctx context.Context, taskID int64, tagIDs []int64) error {
	v := validator.New()
	for _, id := range tagIDs {
		v.Check(id > 0, "tagIds", "must be positive ids")
	}
	if err := v.Err(); err != nil {
		return err
	}

	if err := s.client.SetTaskTags(ctx, taskID, tagIDs); err != nil {
		return fmt.Errorf("set tags of task %d: %w", taskID, err)
	}

	return nil
}
