package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/sub-keeper/internal/http/response"
	"github.com/magabrotheeeer/sub-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/sub-keeper/internal/models"
	userservice "github.com/magabrotheeeer/sub-keeper/internal/services/user"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Get(ctx context.Context) (*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, userservice.ErrNoUser) {
			log.Error("no user record yet")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to read settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read settings"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"user":                 user,
		"suggested_categories": models.SuggestedCategories,
	}))
}
