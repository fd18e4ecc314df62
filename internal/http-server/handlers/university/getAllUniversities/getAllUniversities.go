package getAllUniversities

import (
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Universities []models.University `json:"universities"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UniversityLister
type UniversityLister interface {
	GetAllUniversities(filter storage.UniversityFilter) ([]models.University, error)
}

// New lists the university catalog, optionally filtered by city and type.
func New(log *slog.Logger, lister UniversityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.university.getAllUniversities.New"

		log = log.With(slog.String("op", op))

		filter := storage.UniversityFilter{
			City: r.URL.Query().Get("city"),
			Type: models.UniversityType(r.URL.Query().Get("type")),
		}

		universities, err := lister.GetAllUniversities(filter)
		if err != nil {
			log.Error("failed to get universities", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get universities"))
			return
		}

		log.Info("universities retrieved", slog.Int("count", len(universities)))

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Universities: universities,
		})
	}
}
