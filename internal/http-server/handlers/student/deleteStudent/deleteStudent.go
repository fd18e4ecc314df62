package deleteStudent

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentDeleter
type StudentDeleter interface {
	DeleteStudent(id string) error
}

func New(log *slog.Logger, deleter StudentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.deleteStudent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("student id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("student id is required"))
			return
		}

		err := deleter.DeleteStudent(id)
		if err != nil {
			log.Error("failed to delete student", sl.Err(err))

			if errors.Is(err, storage.ErrStudentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("student not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete student"))
			return
		}

		log.Info("student deleted", slog.String("id", id))

		render.JSON(w, r, response.OK())
	}
}
