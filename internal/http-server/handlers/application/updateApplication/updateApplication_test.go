package updateApplication

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bekmanvision/uniqer/internal/http-server/handlers/application/updateApplication/mocks"
	"github.com/bekmanvision/uniqer/internal/lib/logger/handlers/slogdiscard"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateApplicationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	cancelled := models.ApplicationCancelled

	testCases := []struct {
		name           string
		applicationID  string
		requestBody    string
		mockSetup      func(updater *mocks.ApplicationUpdater)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Cancel releases the seat",
			applicationID: "app-1",
			requestBody:   `{"status":"CANCELLED"}`,
			mockSetup: func(updater *mocks.ApplicationUpdater) {
				updater.On("UpdateApplication", "app-1", storage.ApplicationPatch{Status: &cancelled}).
					Return(&models.Application{
						ID:     "app-1",
						Name:   "Aigerim",
						Phone:  "+77001234567",
						Role:   models.RoleStudent,
						Type:   models.ApplicationTour,
						TourID: "tour-1",
						Status: models.ApplicationCancelled,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"status":"CANCELLED"`)
			},
		},
		{
			name:          "Message only",
			applicationID: "app-1",
			requestBody:   `{"message":"called back, will decide tomorrow"}`,
			mockSetup: func(updater *mocks.ApplicationUpdater) {
				updater.On("UpdateApplication", "app-1", mock.AnythingOfType("storage.ApplicationPatch")).
					Return(&models.Application{
						ID:      "app-1",
						Status:  models.ApplicationContacted,
						Message: "called back, will decide tomorrow",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "called back")
			},
		},
		{
			name:           "Unknown status value",
			applicationID:  "app-1",
			requestBody:    `{"status":"ARCHIVED"}`,
			mockSetup:      func(updater *mocks.ApplicationUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Status must be one of")
			},
		},
		{
			name:          "Application not found",
			applicationID: "missing",
			requestBody:   `{"status":"CONFIRMED"}`,
			mockSetup: func(updater *mocks.ApplicationUpdater) {
				updater.On("UpdateApplication", "missing", mock.AnythingOfType("storage.ApplicationPatch")).
					Return(nil, storage.ErrApplicationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "application not found")
			},
		},
		{
			name:          "Reviving a cancelled booking with no seats left",
			applicationID: "app-1",
			requestBody:   `{"status":"CONFIRMED"}`,
			mockSetup: func(updater *mocks.ApplicationUpdater) {
				updater.On("UpdateApplication", "app-1", mock.AnythingOfType("storage.ApplicationPatch")).
					Return(nil, storage.ErrNoSeatsAvailable)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "no seats available")
			},
		},
		{
			name:          "Internal error",
			applicationID: "app-1",
			requestBody:   `{"status":"CONTACTED"}`,
			mockSetup: func(updater *mocks.ApplicationUpdater) {
				updater.On("UpdateApplication", "app-1", mock.AnythingOfType("storage.ApplicationPatch")).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to update application")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewApplicationUpdater(t)
			tc.mockSetup(updater)

			handler := New(logger, updater)

			router := chi.NewRouter()
			router.Put("/api/applications/{id}", handler)

			req, err := http.NewRequest(http.MethodPut, "/api/applications/"+tc.applicationID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
