package deleteTour

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TourDeleter
type TourDeleter interface {
	DeleteTour(id string) error
}

// New deletes a tour. Applications that referenced it keep their rows
// with tour_id set to null by the schema.
func New(log *slog.Logger, deleter TourDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tour.deleteTour.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("tour id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("tour id is required"))
			return
		}

		err := deleter.DeleteTour(id)
		if err != nil {
			log.Error("failed to delete tour", sl.Err(err))

			if errors.Is(err, storage.ErrTourNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("tour not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete tour"))
			return
		}

		log.Info("tour deleted", slog.String("id", id))

		render.JSON(w, r, response.OK())
	}
}
