// Package list реализует HTTP-обработчик чтения ленты уведомлений.
//
// Нотификатор пишет уведомления в ленту, клиент периодически забирает
// последние и сам отвечает за показ и скрытие по display_duration_ms.
package list

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sub-keeper/internal/http/response"
	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

type Handler struct {
	log  *slog.Logger
	feed Feed
}

// Feed описывает источник уведомлений, новые первыми.
type Feed interface {
	List(limit int) []models.Alert
}

func New(log *slog.Logger, feed Feed) *Handler {
	return &Handler{
		log:  log,
		feed: feed,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notification.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20
	}

	alerts := h.feed.List(limit)

	log.Info("list notifications", "count", len(alerts))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(alerts),
		"alerts":     alerts,
	}))
}
