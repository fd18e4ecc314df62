package getTour

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bekmanvision/uniqer/internal/http-server/handlers/tour/getTour/mocks"
	"github.com/bekmanvision/uniqer/internal/lib/logger/handlers/slogdiscard"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTourHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		idOrSlug       string
		mockSetup      func(getter *mocks.TourGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:     "By slug",
			idOrSlug: "almaty-campus-tour",
			mockSetup: func(getter *mocks.TourGetter) {
				getter.On("GetTour", "almaty-campus-tour").
					Return(&models.Tour{
						ID:        "tour-1",
						Slug:      "almaty-campus-tour",
						Title:     "Almaty Campus Tour",
						Seats:     30,
						SeatsLeft: 25,
						Status:    models.TourOpen,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"seats_left":25`)
			},
		},
		{
			name:     "Not found",
			idOrSlug: "missing",
			mockSetup: func(getter *mocks.TourGetter) {
				getter.On("GetTour", "missing").Return(nil, storage.ErrTourNotFound)
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

			getter := mocks.NewTourGetter(t)
			tc.mockSetup(getter)

			handler := New(logger, getter)

			router := chi.NewRouter()
			router.Get("/api/tours/{id}", handler)

			req, err := http.NewRequest(http.MethodGet, "/api/tours/"+tc.idOrSlug, nil)
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
