package getStudentBoard

import (
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Columns []storage.StudentBoardColumn `json:"columns"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentBoardProvider
type StudentBoardProvider interface {
	GetStudentBoard(tourID string) ([]storage.StudentBoardColumn, error)
}

// New returns the kanban board: one column per pipeline stage, every
// column present even when empty.
func New(log *slog.Logger, provider StudentBoardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.getStudentBoard.New"

		log = log.With(slog.String("op", op))

		tourID := r.URL.Query().Get("tour_id")

		columns, err := provider.GetStudentBoard(tourID)
		if err != nil {
			log.Error("failed to get student board", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get student board"))
			return
		}

		log.Info("student board retrieved", slog.Int("columns", len(columns)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Columns:  columns,
		})
	}
}
