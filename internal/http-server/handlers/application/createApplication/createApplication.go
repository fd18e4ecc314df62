package createApplication

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/notify"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	City      string `json:"city,omitempty"`
	Grade     string `json:"grade,omitempty"`
	Role      string `json:"role" validate:"required,oneof=STUDENT PARENT SCHOOL OTHER"`
	OtherRole string `json:"other_role,omitempty"`
	TourID    string `json:"tour_id,omitempty"`
	Type      string `json:"type,omitempty" validate:"omitempty,oneof=TOUR B2B CONTACT"`
	Message   string `json:"message,omitempty"`
	Source    string `json:"source,omitempty"`
}

type Response struct {
	response.Response
	Application *models.Application `json:"application,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ApplicationAdmitter
type ApplicationAdmitter interface {
	CreateApplication(app models.Application) (*models.Application, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Send(msg notify.Message) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StaffPinger
type StaffPinger interface {
	SendTemplate(to, template string, params []string) error
}

// New handles the public booking/contact form. With a tour id the storage
// admission decides openness and capacity; without one the application is
// stored as a plain contact. Notifications are best-effort and never fail
// the request.
func New(log *slog.Logger, admitter ApplicationAdmitter, notifier Notifier, pinger StaffPinger, staffEmail, staffPhone string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.application.createApplication.New"

		log = log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		app, err := admitter.CreateApplication(models.Application{
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
			City:      req.City,
			Grade:     req.Grade,
			Role:      models.ApplicantRole(req.Role),
			OtherRole: req.OtherRole,
			TourID:    req.TourID,
			Type:      models.ApplicationType(req.Type),
			Message:   req.Message,
			Source:    req.Source,
		})
		if err != nil {
			log.Error("failed to create application", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrTourNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("tour not found"))
			case errors.Is(err, storage.ErrTourClosed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("tour registration is closed"))
			case errors.Is(err, storage.ErrNoSeatsAvailable):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("no seats available"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit application"))
			}
			return
		}

		log.Info("application created", slog.String("id", app.ID))

		sendNotifications(log, notifier, pinger, staffEmail, staffPhone, app)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response:    response.OK(),
			Application: app,
		})
	}
}

func sendNotifications(log *slog.Logger, notifier Notifier, pinger StaffPinger, staffEmail, staffPhone string, app *models.Application) {
	var tourTitle string
	if app.Tour != nil {
		tourTitle = app.Tour.Title
	}

	if app.Email != "" && app.Tour != nil {
		subject, html := notify.ApplicationConfirmation(app.Name, app.Tour.Title)
		if err := notifier.Send(notify.Message{To: app.Email, Subject: subject, HTML: html}); err != nil {
			log.Error("failed to send confirmation email", sl.Err(err))
		}
	}

	if staffEmail != "" {
		subject, html := notify.NewApplicationAlert(app.Name, app.Phone, app.Role, tourTitle)
		if err := notifier.Send(notify.Message{To: staffEmail, Subject: subject, HTML: html}); err != nil {
			log.Error("failed to send staff alert", sl.Err(err))
		}
	}

	if pinger != nil && staffPhone != "" {
		if err := pinger.SendTemplate(staffPhone, "new_application", []string{app.Name, app.Phone, tourTitle}); err != nil {
			log.Error("failed to send whatsapp ping", sl.Err(err))
		}
	}
}
