package getUniversity

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
	University *models.University `json:"university,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UniversityGetter
type UniversityGetter interface {
	GetUniversity(idOrSlug string) (*models.University, error)
}

func New(log *slog.Logger, getter UniversityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.university.getUniversity.New"

		log = log.With(slog.String("op", op))

		idOrSlug := chi.URLParam(r, "id")
		if idOrSlug == "" {
			log.Error("university id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("university id is required"))
			return
		}

		university, err := getter.GetUniversity(idOrSlug)
		if err != nil {
			log.Error("failed to get university", sl.Err(err))

			if errors.Is(err, storage.ErrUniversityNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("university not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get university"))
			return
		}

		log.Info("university retrieved", slog.String("id", university.ID))

		render.JSON(w, r, Response{
			Response:   response.OK(),
			University: university,
		})
	}
}
