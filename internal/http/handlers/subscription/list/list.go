package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sub-keeper/internal/http/response"
	"github.com/magabrotheeeer/sub-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	ListViews(ctx context.Context, filter models.Filter, limit, offset int) ([]models.SubscriptionView, error)
	Summary(ctx context.Context) (*models.Summary, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP отдает отфильтрованный список подписок вместе со сводкой.
// Параметры запроса: search (подстрока названия), status (All|Active|Expired),
// limit, offset.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}

	offsetStr := r.URL.Query().Get("offset")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := models.Filter{
		SearchTerm: r.URL.Query().Get("search"),
		Status:     r.URL.Query().Get("status"),
	}
	switch filter.Status {
	case "", models.StatusFilterAll, models.StatusFilterActive, models.StatusFilterExpired:
	default:
		log.Error("unknown status filter", slog.String("status", filter.Status))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("status must be one of: All, Active, Expired"))
		return
	}

	views, err := h.service.ListViews(r.Context(), filter, limit, offset)
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list"))
		return
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		log.Error("failed to count summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list"))
		return
	}

	log.Info("list subscriptions", "count", len(views))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(views),
		"entries":    views,
		"summary":    summary,
	}))
}
