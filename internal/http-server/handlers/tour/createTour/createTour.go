package createTour

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Title         string    `json:"title" validate:"required"`
	City          string    `json:"city" validate:"required"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date" validate:"required"`
	Price         int64     `json:"price"`
	Seats         int       `json:"seats" validate:"required,gt=0"`
	Grade         string    `json:"grade,omitempty"`
	Status        string    `json:"status,omitempty" validate:"omitempty,oneof=OPEN CLOSED CANCELLED"`
	Description   string    `json:"description,omitempty"`
	Featured      bool      `json:"featured,omitempty"`
	UniversityIDs []string  `json:"university_ids,omitempty"`
}

type Response struct {
	response.Response
	Tour *models.Tour `json:"tour,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TourCreator
type TourCreator interface {
	CreateTour(tour models.Tour, universityIDs []string) (*models.Tour, error)
}

// New creates a tour with seats_left initialized to seats and a slug
// derived from the title.
func New(log *slog.Logger, creator TourCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tour.createTour.New"

		log = log.With(slog.String("op", op))

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

		tour, err := creator.CreateTour(models.Tour{
			Title:       req.Title,
			City:        req.City,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Price:       req.Price,
			Seats:       req.Seats,
			Grade:       req.Grade,
			Status:      models.TourStatus(req.Status),
			Description: req.Description,
			Featured:    req.Featured,
		}, req.UniversityIDs)
		if err != nil {
			log.Error("failed to create tour", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create tour"))
			return
		}

		log.Info("tour created", slog.String("id", tour.ID), slog.String("slug", tour.Slug))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Tour:     tour,
		})
	}
}
