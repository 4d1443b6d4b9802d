package subkeeper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/sub-keeper/internal/config"
	"github.com/magabrotheeeer/sub-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/sub-keeper/internal/notifications"
	notifierservice "github.com/magabrotheeeer/sub-keeper/internal/services/notifier"
	subservice "github.com/magabrotheeeer/sub-keeper/internal/services/subscription"
	userservice "github.com/magabrotheeeer/sub-keeper/internal/services/user"
	"github.com/magabrotheeeer/sub-keeper/internal/store"
)

// App собирает все компоненты приложения: хранилище в памяти, сервисы,
// нотификатор и HTTP-сервер.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	notifier *notifierservice.NotifierService
}

// New создает приложение из конфига.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db := store.New()
	feed := notifications.NewFeed(cfg.FeedCapacity)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	subscriptionService := subservice.NewSubscriptionService(db, logger, cfg.UpcomingWindowDays)
	users := userservice.NewUserService(jwtMaker, logger)
	notifier := notifierservice.NewNotifierService(db, feed, logger, notifierservice.Options{
		CheckInterval:        cfg.CheckInterval,
		TodayDisplayDuration: cfg.TodayDisplayDuration,
		SoonDisplayDuration:  cfg.SoonDisplayDuration,
	})

	router := chi.NewRouter()
	RegisterRoutes(router, logger, subscriptionService, users, feed, jwtMaker)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		notifier: notifier,
	}, nil
}

// Run запускает нотификатор и HTTP-сервер и блокируется до отмены
// контекста или ошибки сервера. Нотификатор останавливается вместе
// с приложением: его таймер живёт не дольше контекста.
func (a *App) Run(ctx context.Context) error {
	notifierCtx, stopNotifier := context.WithCancel(ctx)
	defer stopNotifier()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.notifier.Run(notifierCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		stopNotifier()
		wg.Wait()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		stopNotifier()
		wg.Wait()
		return err
	}
}
