package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/business/goals"
	"github.com/SergeyKozhin/liferabbit/internal/business/schedules"
	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/reward"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger
	loc     *time.Location
	now     func() time.Time

	session   sessionManager
	accounts  accountClient
	goals     goalsService
	schedules schedulesService
}

type sessionManager interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	LoggedIn() bool
	UserKey() string
}

type accountClient interface {
	Register(ctx context.Context, email, password string) (*model.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type goalsService interface {
	ListGoals(ctx context.Context) (*goals.GoalList, error)
	CreateGoal(ctx context.Context, goal *model.GoalCreate) (*goals.GoalList, error)
	GoalDetail(ctx context.Context, goalID int64) (*goals.GoalDetail, error)
	AchieveGoal(ctx context.Context, goalID int64) (*goals.GoalDetail, error)
	ListTasks(ctx context.Context, goalID int64) ([]*model.Task, error)
	AddTask(ctx context.Context, goalID int64, title string) (*goals.GoalDetail, error)
	DeleteTask(ctx context.Context, goalID, taskID int64) (*goals.GoalDetail, error)
	CompleteTask(ctx context.Context, goalID, taskID int64) (*goals.TaskCompletion, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	CreateTag(ctx context.Context, name, color string) ([]*model.Tag, error)
	SetTaskTags(ctx context.Context, taskID int64, tagIDs []int64) error
	CalendarMonth(ctx context.Context, anchor, today calendar.Date) (*goals.CalendarMonth, error)
	UpsertSchedule(ctx context.Context, req *goals.ScheduleRequest) (*model.ScheduleUpsert, error)
	CompleteOccurrence(ctx context.Context, taskID int64, date string) error
	History(ctx context.Context, from, to calendar.Date) ([]*model.HistoryEntry, error)
}

type schedulesService interface {
	List(ctx context.Context) ([]*model.ScheduleEvent, error)
	Get(ctx context.Context, id string) (*model.ScheduleEvent, error)
	Create(ctx context.Context, form *model.ScheduleForm) (*model.ScheduleEvent, error)
	Update(ctx context.Context, id string, form *model.ScheduleForm) (*model.ScheduleEvent, error)
	Delete(ctx context.Context, id string) error
	ToggleDone(ctx context.Context, id string, date calendar.Date, done bool) (*model.ScheduleEvent, *reward.Celebration, error)
	Month(ctx context.Context, anchor, today calendar.Date) (*schedules.MonthView, error)
	History(ctx context.Context) ([]*model.ScheduleHistoryItem, error)
	ExportICS(ctx context.Context, w io.Writer) error
}

func NewApi(
	logger *zap.SugaredLogger,
	loc *time.Location,
	session sessionManager,
	accounts accountClient,
	goalsSvc goalsService,
	schedulesSvc schedulesService,
) *Api {
	if loc == nil {
		loc = time.Local
	}

	a := &Api{
		logger:    logger,
		loc:       loc,
		now:       time.Now,
		session:   session,
		accounts:  accounts,
		goals:     goalsSvc,
		schedules: schedulesSvc,
	}
	a.setupHandler()

	return a
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", a.registerHandler)
		r.Post("/login", a.loginHandler)
		r.Post("/logout", a.logoutHandler)
		r.Get("/session", a.sessionHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(a.auth)

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", a.listGoalsHandler)
			r.Post("/", a.createGoalHandler)

			r.Route("/{goalID}", func(r chi.Router) {
				r.Get("/", a.getGoalHandler)
				r.Post("/achieve", a.achieveGoalHandler)
				r.Get("/tasks", a.listTasksHandler)
				r.Post("/tasks", a.addTaskHandler)
				r.Delete("/tasks/{taskID}", a.deleteTaskHandler)
			})
		})

		r.Route("/tasks/{taskID}", func(r chi.Router) {
			r.Post("/complete", a.completeTaskHandler)
			r.Post("/tags", a.setTaskTagsHandler)
		})

		r.Get("/tags", a.listTagsHandler)
		r.Post("/tags", a.createTagHandler)

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", a.calendarHandler)
			r.Post("/schedules", a.upsertScheduleHandler)
			r.Post("/complete", a.completeOccurrenceHandler)
		})

		r.Get("/history", a.historyHandler)

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", a.listSchedulesHandler)
			r.Post("/", a.createScheduleHandler)
			r.Get("/month", a.scheduleMonthHandler)
			r.Get("/history", a.scheduleHistoryHandler)
			r.Get("/calendar.ics", a.exportSchedulesHandler)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getScheduleHandler)
				r.Put("/", a.updateScheduleHandler)
				r.Delete("/", a.deleteScheduleHandler)
				r.Post("/done", a.toggleScheduleHandler)
			})
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *Api) today() calendar.Date {
	return calendar.DateOf(a.now().In(a.loc))
}
