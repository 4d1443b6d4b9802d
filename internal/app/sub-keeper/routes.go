// Package subkeeper предоставляет маршруты для основного приложения.
package subkeeper

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/sub-keeper/internal/http/handlers/auth/login"
	notificationlist "github.com/magabrotheeeer/sub-keeper/internal/http/handlers/notification/list"
	settingsget "github.com/magabrotheeeer/sub-keeper/internal/http/handlers/settings/get"
	settingsupdate "github.com/magabrotheeeer/sub-keeper/internal/http/handlers/settings/update"
	"github.com/magabrotheeeer/sub-keeper/internal/http/handlers/subscription/create"
	"github.com/magabrotheeeer/sub-keeper/internal/http/handlers/subscription/health"
	"github.com/magabrotheeeer/sub-keeper/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/sub-keeper/internal/http/handlers/subscription/read"
	"github.com/magabrotheeeer/sub-keeper/internal/http/handlers/subscription/remove"
	"github.com/magabrotheeeer/sub-keeper/internal/http/handlers/subscription/update"
	"github.com/magabrotheeeer/sub-keeper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/sub-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/sub-keeper/internal/notifications"
	subservice "github.com/magabrotheeeer/sub-keeper/internal/services/subscription"
	userservice "github.com/magabrotheeeer/sub-keeper/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, subscriptionService *subservice.SubscriptionService, users *userservice.UserService, feed *notifications.Feed, jwtMaker jwt.Maker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, users).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/subscriptions", create.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/{id}", read.New(logger, subscriptionService).ServeHTTP)
			r.Put("/subscriptions/{id}", update.New(logger, subscriptionService).ServeHTTP)
			r.Delete("/subscriptions/{id}", remove.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/list", list.New(logger, subscriptionService).ServeHTTP)
			r.Get("/notifications", notificationlist.New(logger, feed).ServeHTTP)
			r.Get("/settings", settingsget.New(logger, users).ServeHTTP)
			r.Put("/settings", settingsupdate.New(logger, users).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
