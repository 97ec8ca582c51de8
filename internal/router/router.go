package router

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	_ "child-immunization-tracker/docs"
	mem "child-immunization-tracker/internal/adapters/storage/memory"
	pg "child-immunization-tracker/internal/adapters/storage/postgres"
	"child-immunization-tracker/internal/domain/catalog"
	"child-immunization-tracker/internal/domain/children"
	"child-immunization-tracker/internal/domain/coverage"
	"child-immunization-tracker/internal/domain/dashboard"
	"child-immunization-tracker/internal/domain/notifications"
	"child-immunization-tracker/internal/domain/schedule"
	"child-immunization-tracker/internal/domain/users"
	"child-immunization-tracker/internal/middleware"
	"child-immunization-tracker/internal/platform/logger"
	"child-immunization-tracker/internal/platform/realtime"
	"child-immunization-tracker/internal/ports/auth"
	rtport "child-immunization-tracker/internal/ports/realtime"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (solo modo dev)
	TokenIssuer  auth.TokenIssuer  // nil => /auth/anonymous responde 503

	// DevMode habilita el header X-Debug-User-ID.
	DevMode bool

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger   logger.Logger
	Location *time.Location  // zona para calcular "hoy"; default UTC
	Catalog  catalog.Catalog // default catalog.Default()
	Hub      *realtime.Hub   // default: hub nuevo
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	cat := opts.Catalog
	if len(cat) == 0 {
		cat = catalog.Default()
	}
	hub := opts.Hub
	if hub == nil {
		hub = realtime.NewHub(log)
	}

	var (
		childRepo    children.Repository
		scheduleRepo schedule.Repository
		notifRepo    notifications.Repository
		userRepo     users.Repository
	)

	if opts.DB != nil {
		store := pg.NewImmunizationRepo(opts.DB)
		childRepo = store
		scheduleRepo = store
		notifRepo = pg.NewNotificationsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
	} else {
		store := mem.NewImmunizationStore()
		childRepo = store
		scheduleRepo = store
		notifRepo = mem.NewNotificationRepo()
		userRepo = mem.NewUserRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, opts.TokenIssuer)
	childrenSvc := children.NewService(childRepo, cat).WithPublisher(hub)
	scheduleSvc := schedule.NewService(scheduleRepo).WithLocation(loc).WithPublisher(hub)
	notifSvc := notifications.NewService(notifRepo).WithLocation(loc).WithPublisher(hub)
	coverageSvc := coverage.NewService(cat, childrenSvc, scheduleSvc).WithLocation(loc)
	dashboardSvc := dashboard.NewService(childrenSvc, scheduleSvc, notifSvc, log).WithLocation(loc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, opts.DevMode))
	r.Use(middleware.RoleContext(usersSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	catalog.RegisterRoutes(r, cat)
	children.RegisterRoutes(r, childrenSvc)
	schedule.RegisterRoutes(r, scheduleSvc, childrenSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)
	coverage.RegisterRoutes(r, coverageSvc)
	notifications.RegisterRoutes(r, notifSvc, dashboardSvc)
	realtime.RegisterRoutes(r, hub, topicGuard(childrenSvc))

	return r
}

// topicGuard: cada usuario escucha su bandeja; el personal de salud escucha todo;
// un padre solo el calendario de sus hijos.
func topicGuard(kids schedule.ChildLookup) realtime.TopicGuard {
	return func(ctx context.Context, c auth.Claims, topic string) bool {
		if topic == rtport.TopicNotifications(c.UserID) {
			return true
		}
		if c.Role == auth.RoleHealthcareWorker {
			return topic == rtport.TopicChildren || isScheduleTopic(topic)
		}
		if c.Role != auth.RoleParent || !isScheduleTopic(topic) {
			return false
		}

		childID := strings.TrimSuffix(strings.TrimPrefix(topic, "children/"), "/schedule")
		parentID, err := kids.ParentOf(ctx, childID)
		return err == nil && parentID == c.UserID
	}
}

func isScheduleTopic(topic string) bool {
	if !strings.HasPrefix(topic, "children/") || !strings.HasSuffix(topic, "/schedule") {
		return false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(topic, "children/"), "/schedule")
	return id != "" && !strings.Contains(id, "/")
}
