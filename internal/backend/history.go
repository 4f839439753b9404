package backend

import (
	"context"
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

func (c *Client) History(ctx context.Context, from, to calendar.Date) ([]*model.HistoryEntry, error) {
	var resp []*historyDTO
	if err := c.do(ctx, "History", http.MethodGet, "/api/history?"+rangeQuery(from, to), nil, &resp); err != nil {
		return nil, err
	}

	entries := make([]*model.HistoryEntry, 0, len(resp))
	for _, d := range resp {
		if d == nil {
			return nil, invalid("null history entry")
		}
		e, err := d.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
