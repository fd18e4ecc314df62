package getAllStudents

import (
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/query"
	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Students   []models.Student `json:"students"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentLister
type StudentLister interface {
	GetAllStudents(filter storage.StudentFilter) ([]models.Student, int, error)
}

// New lists students with filtering, free-text search and pagination.
func New(log *slog.Logger, lister StudentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.getAllStudents.New"

		log = log.With(slog.String("op", op))

		filter := storage.StudentFilter{
			Status:   models.StudentStatus(r.URL.Query().Get("status")),
			TourID:   r.URL.Query().Get("tour_id"),
			City:     r.URL.Query().Get("city"),
			Grade:    r.URL.Query().Get("grade"),
			Search:   r.URL.Query().Get("search"),
			Page:     query.Page(r),
			PageSize: query.PageSize(r),
		}

		students, total, err := lister.GetAllStudents(filter)
		if err != nil {
			log.Error("failed to get students", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get students"))
			return
		}

		totalPages := (total + filter.PageSize - 1) / filter.PageSize

		log.Info("students retrieved", slog.Int("count", len(students)), slog.Int("total", total))

		render.JSON(w, r, Response{
			Response:   response.OK(),
			Students:   students,
			Total:      total,
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalPages: totalPages,
		})
	}
}
