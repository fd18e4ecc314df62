package updateApplication

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
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Status  string  `json:"status,omitempty" validate:"omitempty,oneof=NEW CONTACTED CONFIRMED CANCELLED COMPLETED"`
	Message *string `json:"message,omitempty"`
}

type Response struct {
	response.Response
	Application *models.Application `json:"application,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ApplicationUpdater
type ApplicationUpdater interface {
	UpdateApplication(id string, patch storage.ApplicationPatch) (*models.Application, error)
}

// New handles admin status/message edits. The storage layer performs the
// seat side effects: entering CANCELLED restores the seat, reviving a
// released application re-runs the admission check and may be refused.
func New(log *slog.Logger, updater ApplicationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.application.updateApplication.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("application id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("application id is required"))
			return
		}

		log = log.With(slog.String("application_id", id))

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

		patch := storage.ApplicationPatch{Message: req.Message}
		if req.Status != "" {
			status := models.ApplicationStatus(req.Status)
			patch.Status = &status
		}

		app, err := updater.UpdateApplication(id, patch)
		if err != nil {
			log.Error("failed to update application", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrApplicationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("application not found"))
			case errors.Is(err, storage.ErrTourClosed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("tour registration is closed"))
			case errors.Is(err, storage.ErrNoSeatsAvailable):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("no seats available"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update application"))
			}
			return
		}

		log.Info("application updated", slog.String("status", string(app.Status)))

		render.JSON(w, r, Response{
			Response:    response.OK(),
			Application: app,
		})
	}
}
