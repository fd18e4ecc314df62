package getAllApplications

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
	Applications []models.Application `json:"applications"`
	Total        int                  `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	TotalPages   int                  `json:"total_pages"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ApplicationLister
type ApplicationLister interface {
	GetAllApplications(filter storage.ApplicationFilter) ([]models.Application, int, error)
}

func New(log *slog.Logger, lister ApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.application.getAllApplications.New"

		log = log.With(slog.String("op", op))

		filter := storage.ApplicationFilter{
			Status:   models.ApplicationStatus(r.URL.Query().Get("status")),
			Role:     models.ApplicantRole(r.URL.Query().Get("role")),
			Type:     models.ApplicationType(r.URL.Query().Get("type")),
			TourID:   r.URL.Query().Get("tour_id"),
			Page:     query.Page(r),
			PageSize: query.PageSize(r),
		}

		apps, total, err := lister.GetAllApplications(filter)
		if err != nil {
			log.Error("failed to get applications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get applications"))
			return
		}

		log.Info("applications retrieved", slog.Int("count", len(apps)), slog.Int("total", total))

		totalPages := (total + filter.PageSize - 1) / filter.PageSize

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Applications: apps,
			Total:        total,
			Page:         filter.Page,
			PageSize:     filter.PageSize,
			TotalPages:   totalPages,
		})
	}
}
