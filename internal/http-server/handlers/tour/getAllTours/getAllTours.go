package getAllTours

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Tours []models.Tour `json:"tours"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TourLister
type TourLister interface {
	GetAllTours(filter storage.TourFilter) ([]models.Tour, error)
}

// New lists tours, optionally filtered by city, grade, status and
// featured flag.
func New(log *slog.Logger, lister TourLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tour.getAllTours.New"

		log = log.With(slog.String("op", op))

		filter := storage.TourFilter{
			City:   r.URL.Query().Get("city"),
			Grade:  r.URL.Query().Get("grade"),
			Status: models.TourStatus(r.URL.Query().Get("status")),
		}

		if raw := r.URL.Query().Get("featured"); raw != "" {
			featured, err := strconv.ParseBool(raw)
			if err != nil {
				log.Error("invalid featured flag", slog.String("featured", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("featured must be true or false"))
				return
			}
			filter.Featured = &featured
		}

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err == nil && limit > 0 {
				filter.Limit = limit
			}
		}

		tours, err := lister.GetAllTours(filter)
		if err != nil {
			log.Error("failed to get tours", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tours"))
			return
		}

		log.Info("tours retrieved", slog.Int("count", len(tours)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Tours:    tours,
		})
	}
}
