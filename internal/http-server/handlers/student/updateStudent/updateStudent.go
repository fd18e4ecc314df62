package updateStudent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/lib/phone"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	FullName          *string `json:"full_name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	City              *string `json:"city,omitempty"`
	School            *string `json:"school,omitempty"`
	Grade             *string `json:"grade,omitempty"`
	Age               *int    `json:"age,omitempty" validate:"omitempty,gt=0"`
	Language          *string `json:"language,omitempty"`
	Direction         *string `json:"direction,omitempty"`
	PreferredUnis     *string `json:"preferred_unis,omitempty"`
	ParentName        *string `json:"parent_name,omitempty"`
	ParentPhone       *string `json:"parent_phone,omitempty"`
	ParentPhoneBackup *string `json:"parent_phone_backup,omitempty"`
	ContactParent     *string `json:"contact_parent,omitempty" validate:"omitempty,oneof=MOTHER FATHER GUARDIAN OTHER"`
	Allergies         *string `json:"allergies,omitempty"`
	TravelExperience  *bool   `json:"travel_experience,omitempty"`
	TourID            *string `json:"tour_id,omitempty"`
	Status            *string `json:"status,omitempty" validate:"omitempty,oneof=REGISTERED CONFIRMED PAID COMPLETED CANCELLED"`
	Notes             *string `json:"notes,omitempty"`
}

type Response struct {
	response.Response
	Student *models.Student `json:"student,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentUpdater
type StudentUpdater interface {
	UpdateStudent(id string, update storage.StudentUpdate) (*models.Student, error)
}

// New applies a partial student edit. Status changes must move forward
// along the pipeline; backward moves and edits to terminal students are
// rejected.
func New(log *slog.Logger, updater StudentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.updateStudent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("student id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("student id is required"))
			return
		}

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

		update := storage.StudentUpdate{
			FullName:         req.FullName,
			City:             req.City,
			School:           req.School,
			Grade:            req.Grade,
			Age:              req.Age,
			Language:         req.Language,
			Direction:        req.Direction,
			PreferredUnis:    req.PreferredUnis,
			ParentName:       req.ParentName,
			Allergies:        req.Allergies,
			TravelExperience: req.TravelExperience,
			TourID:           req.TourID,
			Notes:            req.Notes,
		}
		if req.Phone != nil {
			normalized := phone.Normalize(*req.Phone)
			update.Phone = &normalized
		}
		if req.ParentPhone != nil {
			normalized := phone.Normalize(*req.ParentPhone)
			update.ParentPhone = &normalized
		}
		if req.ParentPhoneBackup != nil {
			normalized := phone.Normalize(*req.ParentPhoneBackup)
			update.ParentPhoneBackup = &normalized
		}
		if req.ContactParent != nil {
			contact := models.ContactParent(*req.ContactParent)
			update.ContactParent = &contact
		}
		if req.Status != nil {
			status := models.StudentStatus(*req.Status)
			update.Status = &status
		}

		student, err := updater.UpdateStudent(id, update)
		if err != nil {
			log.Error("failed to update student", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrStudentNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("student not found"))
			case errors.Is(err, storage.ErrTourNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("tour not found"))
			case errors.Is(err, storage.ErrInvalidTransition):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid status transition"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update student"))
			}
			return
		}

		log.Info("student updated", slog.String("id", student.ID), slog.String("status", string(student.Status)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Student:  student,
		})
	}
}
