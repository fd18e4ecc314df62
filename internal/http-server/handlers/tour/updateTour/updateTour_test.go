package updateTour

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bekmanvision/uniqer/internal/http-server/handlers/tour/updateTour/mocks"
	"github.com/bekmanvision/uniqer/internal/lib/logger/handlers/slogdiscard"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateTourHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		tourID         string
		requestBody    string
		mockSetup      func(updater *mocks.TourUpdater)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Close registration",
			tourID:      "tour-1",
			requestBody: `{"status":"CLOSED"}`,
			mockSetup: func(updater *mocks.TourUpdater) {
				updater.On("UpdateTour", "tour-1", mock.MatchedBy(func(u storage.TourUpdate) bool {
					return u.Status != nil && *u.Status == models.TourClosed && u.Title == nil
				})).Return(&models.Tour{ID: "tour-1", Status: models.TourClosed}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"CLOSED"`)
			},
		},
		{
			name:        "Rename regenerates slug",
			tourID:      "tour-1",
			requestBody: `{"title":"Astana IT Tour"}`,
			mockSetup: func(updater *mocks.TourUpdater) {
				updater.On("UpdateTour", "tour-1", mock.MatchedBy(func(u storage.TourUpdate) bool {
					return u.Title != nil && *u.Title == "Astana IT Tour"
				})).Return(&models.Tour{
					ID:    "tour-1",
					Title: "Astana IT Tour",
					Slug:  "astana-it-tour",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"slug":"astana-it-tour"`)
			},
		},
		{
			name:           "Invalid status",
			tourID:         "tour-1",
			requestBody:    `{"status":"ARCHIVED"}`,
			mockSetup:      func(updater *mocks.TourUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Status")
			},
		},
		{
			name:        "Tour not found",
			tourID:      "missing",
			requestBody: `{"featured":true}`,
			mockSetup: func(updater *mocks.TourUpdater) {
				updater.On("UpdateTour", "missing", mock.AnythingOfType("storage.TourUpdate")).
					Return(nil, storage.ErrTourNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "tour not found")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewTourUpdater(t)
			tc.mockSetup(updater)

			handler := New(logger, updater)

			router := chi.NewRouter()
			router.Put("/api/tours/{id}", handler)

			req, err := http.NewRequest(http.MethodPut, "/api/tours/"+tc.tourID, bytes.NewBufferString(tc.requestBody))
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
