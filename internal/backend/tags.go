package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/model"
)

func (c *Client) ListTags(ctx context.Context) ([]*model.Tag, error) {
	var resp []*tagDTO
	if err := c.do(ctx, "ListTags", http.MethodGet, "/api/tags", nil, &resp); err != nil {
		return nil, err
	}

	return mapTags(resp)
}

func (c *Client) CreateTag(ctx context.Context, name, color string) (*model.Tag, error) {
	resp := &tagDTO{}
	if err := c.do(ctx, "CreateTag", http.MethodPost, "/api/tags", &tagCreateReq{Name: name, Color: color}, resp); err != nil {
		return nil, err
	}

	return resp.toModel()
}

// SetTaskTags replaces the tag set of a task.
func (c *Client) SetTaskTags(ctx context.Context, taskID int64, tagIDs []int64) error {
	if tagIDs == nil {
		tagIDs = []int64{}
	}

	return c.do(ctx, "SetTaskTags", http.MethodPost, fmt.Sprintf("/api/tasks/%d/tags", taskID), &taskTagsReq{TagIDs: tagIDs}, nil)
}
