package exportApplications

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/notify"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ApplicationExporter
type ApplicationExporter interface {
	ExportApplications(filter storage.ApplicationExportFilter) ([]models.Application, error)
}

// New streams the filtered applications as a CSV attachment. The body is
// prefixed with a UTF-8 BOM so Excel picks up the Cyrillic columns.
func New(log *slog.Logger, exporter ApplicationExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.application.exportApplications.New"

		log = log.With(slog.String("op", op))

		filter := storage.ApplicationExportFilter{
			Status: models.ApplicationStatus(r.URL.Query().Get("status")),
			Role:   models.ApplicantRole(r.URL.Query().Get("role")),
			Type:   models.ApplicationType(r.URL.Query().Get("type")),
			TourID: r.URL.Query().Get("tour_id"),
		}

		if from := r.URL.Query().Get("from"); from != "" {
			t, err := time.Parse("2006-01-02", from)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid from date, expected YYYY-MM-DD"))
				return
			}
			filter.From = &t
		}
		if to := r.URL.Query().Get("to"); to != "" {
			t, err := time.Parse("2006-01-02", to)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid to date, expected YYYY-MM-DD"))
				return
			}
			filter.To = &t
		}

		apps, err := exporter.ExportApplications(filter)
		if err != nil {
			log.Error("failed to export applications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export applications"))
			return
		}

		body, err := buildCSV(apps)
		if err != nil {
			log.Error("failed to build csv", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export applications"))
			return
		}

		log.Info("applications exported", slog.Int("count", len(apps)))

		filename := fmt.Sprintf("applications-%s.csv", time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

var csvHeader = []string{
	"ID", "Имя", "Телефон", "Email", "Роль", "Тур", "Город", "Тип заявки", "Статус", "Сообщение", "Источник", "Дата создания",
}

func buildCSV(apps []models.Application) ([]byte, error) {
	var buf bytes.Buffer

	// UTF-8 BOM for Excel
	buf.WriteString("\uFEFF")

	cw := csv.NewWriter(&buf)

	if err := cw.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, app := range apps {
		var tourTitle, tourCity string
		if app.Tour != nil {
			tourTitle = app.Tour.Title
			tourCity = app.Tour.City
		}

		record := []string{
			app.ID,
			app.Name,
			app.Phone,
			app.Email,
			notify.RoleLabel(app.Role),
			tourTitle,
			tourCity,
			string(app.Type),
			string(app.Status),
			app.Message,
			app.Source,
			app.CreatedAt.Format("02.01.2006"),
		}
		if err := cw.Write(record); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
