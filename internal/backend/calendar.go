package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

// Calendar returns the backend-scheduled task occurrences in [from, to].
func (c *Client) Calendar(ctx context.Context, from, to calendar.Date) ([]*model.CalendarItem, error) {
	var resp []*calendarItemDTO
	if err := c.do(ctx, "Calendar", http.MethodGet, "/api/calendar?"+rangeQuery(from, to), nil, &resp); err != nil {
		return nil, err
	}

	items := make([]*model.CalendarItem, 0, len(resp))
	for _, d := range resp {
		if d == nil {
			return nil, invalid("null calendar item")
		}
		item, err := d.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (c *Client) UpsertSchedule(ctx context.Context, s *model.ScheduleUpsert) error {
	req := &scheduleUpsertReq{
		TaskID:         s.TaskID,
		Type:           string(s.Type),
		Date:           s.Date,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		DaysOfWeekMask: s.DaysOfWeekMask,
	}

	return c.do(ctx, "UpsertSchedule", http.MethodPost, "/api/schedules/upsert", req, nil)
}

func (c *Client) CompleteOccurrence(ctx context.Context, taskID int64, date calendar.Date) error {
	return c.do(ctx, "CompleteOccurrence", http.MethodPost, "/api/complete", &completeReq{TaskID: taskID, Date: date.String()}, nil)
}

func rangeQuery(from, to calendar.Date) string {
	q := url.Values{}
	q.Set("from", from.String())
	q.Set("to", to.String())
	return q.Encode()
}
