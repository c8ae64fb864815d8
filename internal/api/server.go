package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/habitual/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	mx                  *chi.Mux
	logger              logrus.FieldLogger
	userService         service.UserServiceI
	habitService        service.HabitsServiceI
	ledgerService       service.LedgerServiceI
	statsService        service.StatsServiceI
	subscriptionService service.SubscriptionServiceI
	jwtService          JWTServiceI
	vapidPublicKey      string
}

type ServicesList struct {
	UserService         service.UserServiceI
	HabitsService       service.HabitsServiceI
	LedgerService       service.LedgerServiceI
	StatsService        service.StatsServiceI
	SubscriptionService service.SubscriptionServiceI
	JwtService          JWTServiceI
	// Handed out to browsers for PushManager.subscribe
	VAPIDPublicKey string
	Logger         logrus.FieldLogger
}

func New(servicesOptions *ServicesList) *Server {
	logger := servicesOptions.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Server{
		mx:                  chi.NewMux(),
		logger:              logger,
		userService:         servicesOptions.UserService,
		habitService:        servicesOptions.HabitsService,
		ledgerService:       servicesOptions.LedgerService,
		statsService:        servicesOptions.StatsService,
		subscriptionService: servicesOptions.SubscriptionService,
		jwtService:          servicesOptions.JwtService,
		vapidPublicKey:      servicesOptions.VAPIDPublicKey,
	}
	s.MountHandlers()
	return s
}

func (s *Server) MountHandlers() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Delete("/auth/account", s.DeleteAccount)

			r.Route("/habits", func(r chi.Router) {
				r.Post("/", s.CreateHabit)
				r.Get("/", s.GetHabits)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.GetHabit)
					r.Put("/", s.UpdateHabit)
					r.Delete("/", s.DeleteHabit)

					r.Post("/completions", s.CreateCompletion)
					r.Get("/completions", s.ListCompletions)
					r.Delete("/completions/{date}", s.DeleteCompletion)

					r.Post("/skips", s.CreateSkip)
					r.Get("/skips", s.ListSkips)
					r.Delete("/skips/{date}", s.DeleteSkip)

					r.Get("/stats", s.HabitStats)
				})
			})
			r.Get("/stats", s.UserStats)

			r.Route("/push", func(r chi.Router) {
				r.Get("/vapid-key", s.VAPIDKey)
				r.Get("/subscriptions", s.ListSubscriptions)
				r.Post("/subscriptions", s.Subscribe)
				r.Delete("/subscriptions", s.Unsubscribe)
				r.Post("/test", s.SendTestNotification)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("api server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
