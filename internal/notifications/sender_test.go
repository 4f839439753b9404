package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

type fakeDue struct {
	asked calendar.Date
	due   []*model.ScheduleEvent
}

func (f *fakeDue) Due(_ context.Context, d calendar.Date) ([]*model.ScheduleEvent, error) {
	f.asked = d
	return f.due, nil
}

type loggedIn bool

func (l loggedIn) LoggedIn() bool { return bool(l) }

func newTestSender(due *fakeDue, in bool, bot *fakeBot) *Sender {
	tokyo := time.FixedZone("JST", 9*60*60)
	s := NewSender(zap.NewNop().Sugar(), due, loggedIn(in), bot, 42, tokyo)
	s.now = func() time.Time {
		// 2025-12-01 23:30 UTC is already 2025-12-02 in Tokyo.
		return time.Date(2025, 12, 1, 23, 30, 0, 0, time.UTC)
	}
	return s
}

func TestSendDigest(t *testing.T) {
	due := &fakeDue{due: []*model.ScheduleEvent{
		{Title: "gym", StartTime: "07:00", EndTime: "08:00"},
		{Title: "dentist", StartTime: "10:30", Memo: "bring card"},
		{Title: "stretch"},
	}}
	bot := &fakeBot{}

	if err := newTestSender(due, true, bot).SendDigest(context.Background()); err != nil {
		t.Fatalf("SendDigest: %v", err)
	}

	if due.asked.String() != "2025-12-02" {
		t.Errorf("asked for %s, want the local date", due.asked)
	}
	if len(bot.sent) != 1 {
		t.Fatalf("sent %d messages", len(bot.sent))
	}

	msg := bot.sent[0]
	want := "📅 2025-12-02, 3 to do\n• 07:00〜08:00 gym\n• 10:30 dentist (bring card)\n• stretch"
	if msg.ChatID != 42 || msg.Text != want {
		t.Errorf("message to %d:\n%s\nwant:\n%s", msg.ChatID, msg.Text, want)
	}
}

func TestSendDigestSkips(t *testing.T) {
	tests := []struct {
		name     string
		loggedIn bool
		due      []*model.ScheduleEvent
	}{
		{"logged out", false, []*model.ScheduleEvent{{Title: "gym"}}},
		{"nothing due", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &fakeBot{}
			if err := newTestSender(&fakeDue{due: tt.due}, tt.loggedIn, bot).SendDigest(context.Background()); err != nil {
				t.Fatal(err)
			}
			if len(bot.sent) != 0 {
				t.Errorf("sent %v", bot.sent)
			}
		})
	}
}

func TestSendDigestError(t *testing.T) {
	bot := &fakeBot{err: errors.New("blocked by user")}
	due := &fakeDue{due: []*model.ScheduleEvent{{Title: "gym"}}}

	if err := newTestSender(due, true, bot).SendDigest(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := newTestSender(&fakeDue{}, true, &fakeBot{})
	if err := s.Start("every morning"); err == nil {
		t.Fatal("expected error for invalid spec")
	}
}
