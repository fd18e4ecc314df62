package createStudent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/lib/phone"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	FullName          string `json:"full_name" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	City              string `json:"city" validate:"required"`
	School            string `json:"school" validate:"required"`
	Grade             string `json:"grade" validate:"required"`
	Age               int    `json:"age" validate:"required,gt=0"`
	Language          string `json:"language" validate:"required"`
	Direction         string `json:"direction" validate:"required"`
	PreferredUnis     string `json:"preferred_unis,omitempty"`
	ParentName        string `json:"parent_name" validate:"required"`
	ParentPhone       string `json:"parent_phone" validate:"required"`
	ParentPhoneBackup string `json:"parent_phone_backup,omitempty"`
	ContactParent     string `json:"contact_parent" validate:"required,oneof=MOTHER FATHER GUARDIAN OTHER"`
	Allergies         string `json:"allergies,omitempty"`
	TravelExperience  bool   `json:"travel_experience,omitempty"`
	TourID            string `json:"tour_id,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

type Response struct {
	response.Response
	Student *models.Student `json:"student,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StudentCreator
type StudentCreator interface {
	CreateStudent(student models.Student) (*models.Student, error)
}

// New enrolls a student into the pipeline at the REGISTERED stage.
// Enrollment does not touch the seat ledger; seats belong to
// applications.
func New(log *slog.Logger, creator StudentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.student.createStudent.New"

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

		student, err := creator.CreateStudent(models.Student{
			FullName:          req.FullName,
			Phone:             phone.Normalize(req.Phone),
			City:              req.City,
			School:            req.School,
			Grade:             req.Grade,
			Age:               req.Age,
			Language:          req.Language,
			Direction:         req.Direction,
			PreferredUnis:     req.PreferredUnis,
			ParentName:        req.ParentName,
			ParentPhone:       phone.Normalize(req.ParentPhone),
			ParentPhoneBackup: phone.Normalize(req.ParentPhoneBackup),
			ContactParent:     models.ContactParent(req.ContactParent),
			Allergies:         req.Allergies,
			TravelExperience:  req.TravelExperience,
			TourID:            req.TourID,
			Notes:             req.Notes,
		})
		if err != nil {
			log.Error("failed to create student", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrTourNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("tour not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create student"))
			}
			return
		}

		log.Info("student created", slog.String("id", student.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Student:  student,
		})
	}
}
