package getTour

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Tour *models.Tour `json:"tour,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TourGetter
type TourGetter interface {
	GetTour(idOrSlug string) (*models.Tour, error)
}

// New resolves a tour by id or slug. The seats_left it reports is a
// display value only; the authoritative capacity check happens on
// application create.
func New(log *slog.Logger, getter TourGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tour.getTour.New"

		log = log.With(slog.String("op", op))

		idOrSlug := chi.URLParam(r, "id")
		if idOrSlug == "" {
			log.Error("tour id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("tour id is required"))
			return
		}

		tour, err := getter.GetTour(idOrSlug)
		if err != nil {
			log.Error("failed to get tour", sl.Err(err))

			if errors.Is(err, storage.ErrTourNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("tour not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tour"))
			return
		}

		log.Info("tour retrieved", slog.String("id", tour.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Tour:     tour,
		})
	}
}
