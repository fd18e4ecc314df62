package login

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bekmanvision/uniqer/internal/http-server/middleware/auth"
	"github.com/bekmanvision/uniqer/internal/lib/api/response"
	"github.com/bekmanvision/uniqer/internal/lib/logger/sl"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token string        `json:"token,omitempty"`
	Admin *models.Admin `json:"admin,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AdminProvider
type AdminProvider interface {
	GetAdminByEmail(email string) (*models.Admin, error)
}

// New exchanges admin credentials for a bearer token. Unknown email and
// wrong password get the same answer.
func New(log *slog.Logger, provider AdminProvider, secret string, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		admin, err := provider.GetAdminByEmail(req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrAdminNotFound) {
				log.Warn("login attempt for unknown email", slog.String("email", req.Email))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid email or password"))
				return
			}

			log.Error("failed to get admin", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			log.Warn("wrong password", slog.String("email", req.Email))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
			return
		}

		token, err := auth.NewToken(*admin, secret, tokenTTL)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("admin logged in", slog.String("email", admin.Email), slog.String("role", string(admin.Role)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Token:    token,
			Admin:    admin,
		})
	}
}
