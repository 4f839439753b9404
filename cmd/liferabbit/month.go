package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/business/schedules"
	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/config"
	"github.com/SergeyKozhin/liferabbit/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func monthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the month grid of the stored schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetString("month")
			return printMonth(cmd.Context(), cmd.OutOrStdout(), month)
		},
	}

	cmd.Flags().StringP("month", "m", "", "Month to show as YYYY-MM (default current)")

	return cmd
}

func printMonth(ctx context.Context, w io.Writer, month string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	loc := config.Location()
	today := calendar.DateOf(time.Now().In(loc))

	anchor := today
	if month != "" {
		var err error
		if anchor, err = calendar.ParseMonth(month); err != nil {
			return fmt.Errorf("--month must be YYYY-MM: %w", err)
		}
	}

	logger := zap.NewNop().Sugar()

	store, err := newStateStore(ctx, logger)
	if err != nil {
		return err
	}

	sess := session.New(store, logger)
	if err := sess.Start(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !sess.LoggedIn() {
		return fmt.Errorf("not logged in, log in through the service first")
	}

	svc := schedules.NewService(store, sess, logger, config.TagFeatureUnlocked(), loc)
	view, err := svc.Month(ctx, anchor, today)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, renderMonth(view))
	return err
}

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// renderMonth draws the grid one cell per column: day of month, then the
// number of occurrences. Days outside the month are in parentheses and
// today is marked with a star.
func renderMonth(view *schedules.MonthView) string {
	var b strings.Builder

	b.WriteString(view.Month + "\n")
	writeRow(&b, weekdayHeader)

	for _, week := range view.Weeks {
		labels := make([]string, 0, len(week))
		for _, cell := range week {
			labels = append(labels, cellLabel(cell))
		}
		writeRow(&b, labels)
	}

	return b.String()
}

func writeRow(b *strings.Builder, cols []string) {
	var row strings.Builder
	for _, c := range cols {
		fmt.Fprintf(&row, "%-8s", c)
	}
	b.WriteString(strings.TrimRight(row.String(), " ") + "\n")
}

func cellLabel(cell *schedules.DayCell) string {
	day := fmt.Sprintf("%d", cell.Date.Day)
	if !cell.InMonth {
		day = "(" + day + ")"
	}
	if cell.Today {
		day += "*"
	}
	if n := len(cell.Events); n > 0 {
		day += fmt.Sprintf(":%d", n)
	}

	return day
}
