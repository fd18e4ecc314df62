package deleteApplication

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

type Response struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ApplicationDeleter
type ApplicationDeleter interface {
	DeleteApplication(id string) error
}

// New handles admin deletion. The storage layer restores the tour seat when
// the deleted application was still holding one.
func New(log *slog.Logger, deleter ApplicationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.application.deleteApplication.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("application id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("application id is required"))
			return
		}

		log = log.With(slog.String("application_id", id))

		err := deleter.DeleteApplication(id)
		if err != nil {
			log.Error("failed to delete application", sl.Err(err))

			if errors.Is(err, storage.ErrApplicationNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("application not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete application"))
			return
		}

		log.Info("application deleted")

		render.JSON(w, r, Response{Response: response.OK()})
	}
}
