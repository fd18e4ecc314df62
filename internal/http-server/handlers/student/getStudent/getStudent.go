package getStudent

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
	Student *models.Student `json:"student,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentGetter
type StudentGetter interface {
	GetStudent(id string) (*models.Student, error)
}

func New(log *slog.Logger, getter StudentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.getStudent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("student id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("student id is required"))
			return
		}

		student, err := getter.GetStudent(id)
		if err != nil {
			log.Error("failed to get student", sl.Err(err))

			if errors.Is(err, storage.ErrStudentNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("student not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get student"))
			return
		}

		log.Info("student retrieved", slog.String("id", student.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Student:  student,
		})
	}
}
