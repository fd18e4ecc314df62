package updateTour

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Title         *string    `json:"title,omitempty"`
	City          *string    `json:"city,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Price         *int64     `json:"price,omitempty"`
	Seats         *int       `json:"seats,omitempty" validate:"omitempty,gt=0"`
	Grade         *string    `json:"grade,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=OPEN CLOSED CANCELLED"`
	Description   *string    `json:"description,omitempty"`
	Featured      *bool      `json:"featured,omitempty"`
	UniversityIDs []string   `json:"university_ids,omitempty"`
}

type Response struct {
	response.Response
	Tour *models.Tour `json:"tour,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TourUpdater
type TourUpdater interface {
	UpdateTour(id string, update storage.TourUpdate) (*models.Tour, error)
}

// New applies a partial tour edit. Changing the title regenerates the
// slug; closing a tour stops new admissions without touching existing
// applications.
func New(log *slog.Logger, updater TourUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tour.updateTour.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("tour id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("tour id is required"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		update := storage.TourUpdate{
			Title:         req.Title,
			City:          req.City,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Price:         req.Price,
			Seats:         req.Seats,
			Grade:         req.Grade,
			Description:   req.Description,
			Featured:      req.Featured,
			UniversityIDs: req.UniversityIDs,
		}
		if req.Status != nil {
			status := models.TourStatus(*req.Status)
			update.Status = &status
		}

		tour, err := updater.UpdateTour(id, update)
		if err != nil {
			log.Error("failed to update tour", sl.Err(err))

			if errors.Is(err, storage.ErrTourNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("tour not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update tour"))
			return
		}

		log.Info("tour updated", slog.String("id", tour.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Tour:     tour,
		})
	}
}
