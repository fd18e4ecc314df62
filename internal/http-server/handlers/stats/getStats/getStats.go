package getStats

import (
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Stats *models.Stats `json:"stats,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	GetStats() (*models.Stats, error)
}

// New returns dashboard aggregates. Revenue counts confirmed
// applications only.
func New(log *slog.Logger, provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stats.getStats.New"

		log = log.With(slog.String("op", op))

		stats, err := provider.GetStats()
		if err != nil {
			log.Error("failed to get stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get stats"))
			return
		}

		log.Info("stats retrieved",
			slog.Int("total_tours", stats.TotalTours),
			slog.Int("total_applications", stats.TotalApplications),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Stats:    stats,
		})
	}
}
