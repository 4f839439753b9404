package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

const sendTimeout = 30 * time.Second

type dueLister interface {
	Due(ctx context.Context, d calendar.Date) ([]*model.ScheduleEvent, error)
}

type session interface {
	LoggedIn() bool
}

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Sender posts a daily digest of the schedules still due today to a
// Telegram chat.
type Sender struct {
	cron      *cron.Cron
	logger    *zap.SugaredLogger
	schedules dueLister
	session   session
	bot       messageSender
	chatID    int64
	loc       *time.Location
	now       func() time.Time
}

func NewSender(
	logger *zap.SugaredLogger,
	schedules dueLister,
	session session,
	bot messageSender,
	chatID int64,
	loc *time.Location,
) *Sender {
	return &Sender{
		cron:      cron.New(cron.WithLocation(loc)),
		logger:    logger,
		schedules: schedules,
		session:   session,
		bot:       bot,
		chatID:    chatID,
		loc:       loc,
		now:       time.Now,
	}
}

// NewBot connects to the Telegram bot API.
func NewBot(token string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}

	return bot, nil
}

// Start schedules the digest on spec (standard 5-field cron) and returns.
func (s *Sender) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.sendDigest); err != nil {
		return fmt.Errorf("add digest job %q: %w", spec, err)
	}

	s.cron.Start()
	closer.Bind(s.Stop)

	s.logger.Infow("digest scheduled", "spec", spec, "tz", s.loc.String())

	return nil
}

func (s *Sender) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sender) sendDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := s.SendDigest(ctx); err != nil {
		s.logger.Errorw("failed to send digest", "err", err)
	}
}

// SendDigest sends today's digest right away. It is a no-op when nobody is
// logged in or nothing is due.
func (s *Sender) SendDigest(ctx context.Context) error {
	if !s.session.LoggedIn() {
		s.logger.Debug("digest skipped, no session")
		return nil
	}

	today := calendar.DateOf(s.now().In(s.loc))

	due, err := s.schedules.Due(ctx, today)
	if err != nil {
		return fmt.Errorf("due schedules: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	if _, err := s.bot.Send(tgbotapi.NewMessage(s.chatID, formatDigest(today, due))); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	s.logger.Infow("digest sent", "date", today.String(), "count", len(due))

	return nil
}

func formatDigest(d calendar.Date, due []*model.ScheduleEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s, %d to do\n", d.String(), len(due))

	for _, ev := range due {
		b.WriteString("• ")
		switch {
		case ev.StartTime != "" && ev.EndTime != "":
			fmt.Fprintf(&b, "%s〜%s ", ev.StartTime, ev.EndTime)
		case ev.StartTime != "":
			b.WriteString(ev.StartTime + " ")
		}
		b.WriteString(ev.Title)
		if ev.Memo != "" {
			b.WriteString(" (" + ev.Memo + ")")
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
