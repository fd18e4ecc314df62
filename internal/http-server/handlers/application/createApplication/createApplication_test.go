package createApplication

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bekmanvision/uniqer/internal/http-server/handlers/application/createApplication/mocks"
	"github.com/bekmanvision/uniqer/internal/lib/logger/handlers/slogdiscard"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const staffEmail = "admin@uniqer.kz"

func tourApplication() *models.Application {
	return &models.Application{
		ID:     "app-1",
		Name:   "Aigerim",
		Phone:  "+77001234567",
		Email:  "aigerim@example.com",
		Role:   models.RoleStudent,
		Type:   models.ApplicationTour,
		TourID: "tour-1",
		Status: models.ApplicationNew,
		Tour: &models.TourRef{
			ID:        "tour-1",
			Title:     "Almaty Campus Tour",
			City:      "Almaty",
			StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestCreateApplicationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		staffPhone     string
		mockSetup      func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success with tour",
			requestBody: `{"name":"Aigerim","phone":"+77001234567","email":"aigerim@example.com","role":"STUDENT","tour_id":"tour-1"}`,
			mockSetup: func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {
				admitter.On("CreateApplication", mock.AnythingOfType("models.Application")).
					Return(tourApplication(), nil)
				notifier.On("Send", mock.AnythingOfType("notify.Message")).Return(nil).Twice()
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":"app-1"`)
				assert.Contains(t, body, `"status":"NEW"`)
			},
		},
		{
			name:        "Success without tour",
			requestBody: `{"name":"School #12","phone":"+77010000000","role":"SCHOOL","type":"B2B"}`,
			mockSetup: func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {
				admitter.On("CreateApplication", mock.AnythingOfType("models.Application")).
					Return(&models.Application{
						ID:     "app-2",
						Name:   "School #12",
						Phone:  "+77010000000",
						Role:   models.RoleSchool,
						Type:   models.ApplicationB2B,
						Status: models.ApplicationNew,
					}, nil)
				notifier.On("Send", mock.AnythingOfType("notify.Message")).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"type":"B2B"`)
			},
		},
		{
			name:           "Missing name",
			requestBody:    `{"phone":"+77001234567","role":"STUDENT"}`,
			mockSetup:      func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Name is a required field")
			},
		},
		{
			name:           "Invalid role",
			requestBody:    `{"name":"Aigerim","phone":"+77001234567","role":"TEACHER"}`,
			mockSetup:      func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Role must be one of")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to decode request")
			},
		},
		{
			name:        "Tour not found",
			requestBody: `{"name":"Aigerim","phone":"+77001234567","role":"STUDENT","tour_id":"missing"}`,
			mockSetup: func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {
				admitter.On("CreateApplication", mock.AnythingOfType("models.Application")).
					Return(nil, storage.ErrTourNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "tour not found")
			},
		},
		{
			name:        "Tour closed",
			requestBody: `{"name":"Aigerim","phone":"+77001234567","role":"STUDENT","tour_id":"tour-1"}`,
			mockSetup: func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {
				admitter.On("CreateApplication", mock.AnythingOfType("models.Application")).
					Return(nil, storage.ErrTourClosed)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "tour registration is closed")
			},
		},
		{
			name:        "No seats available",
			requestBody: `{"name":"Aigerim","phone":"+77001234567","role":"STUDENT","tour_id":"tour-1"}`,
			mockSetup: func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {
				admitter.On("CreateApplication", mock.AnythingOfType("models.Application")).
					Return(nil, storage.ErrNoSeatsAvailable)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "no seats available")
			},
		},
		{
			name:        "Internal error",
			requestBody: `{"name":"Aigerim","phone":"+77001234567","role":"STUDENT"}`,
			mockSetup: func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {
				admitter.On("CreateApplication", mock.AnythingOfType("models.Application")).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to submit application")
			},
		},
		{
			name:        "Notification failure does not fail the booking",
			requestBody: `{"name":"Aigerim","phone":"+77001234567","email":"aigerim@example.com","role":"STUDENT","tour_id":"tour-1"}`,
			mockSetup: func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {
				admitter.On("CreateApplication", mock.AnythingOfType("models.Application")).
					Return(tourApplication(), nil)
				notifier.On("Send", mock.AnythingOfType("notify.Message")).
					Return(errors.New("smtp connection refused")).Twice()
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:        "WhatsApp staff ping",
			requestBody: `{"name":"Aigerim","phone":"+77001234567","email":"aigerim@example.com","role":"STUDENT","tour_id":"tour-1"}`,
			staffPhone:  "+77009990000",
			mockSetup: func(admitter *mocks.ApplicationAdmitter, notifier *mocks.Notifier, pinger *mocks.StaffPinger) {
				admitter.On("CreateApplication", mock.AnythingOfType("models.Application")).
					Return(tourApplication(), nil)
				notifier.On("Send", mock.AnythingOfType("notify.Message")).Return(nil).Twice()
				pinger.On("SendTemplate", "+77009990000", "new_application",
					[]string{"Aigerim", "+77001234567", "Almaty Campus Tour"}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			admitter := mocks.NewApplicationAdmitter(t)
			notifier := mocks.NewNotifier(t)
			pinger := mocks.NewStaffPinger(t)
			tc.mockSetup(admitter, notifier, pinger)

			handler := New(logger, admitter, notifier, pinger, staffEmail, tc.staffPhone)

			req, err := http.NewRequest(http.MethodPost, "/api/applications", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
