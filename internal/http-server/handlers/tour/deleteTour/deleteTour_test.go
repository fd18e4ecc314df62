package deleteTour

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bekmanvision/uniqer/internal/http-server/handlers/tour/deleteTour/mocks"
	"github.com/bekmanvision/uniqer/internal/lib/logger/handlers/slogdiscard"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTourHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		tourID         string
		mockSetup      func(deleter *mocks.TourDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			tourID: "tour-1",
			mockSetup: func(deleter *mocks.TourDeleter) {
				deleter.On("DeleteTour", "tour-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:   "Tour not found",
			tourID: "missing",
			mockSetup: func(deleter *mocks.TourDeleter) {
				deleter.On("DeleteTour", "missing").Return(storage.ErrTourNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"tour not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewTourDeleter(t)
			tc.mockSetup(deleter)

			handler := New(logger, deleter)

			router := chi.NewRouter()
			router.Delete("/api/tours/{id}", handler)

			req, err := http.NewRequest(http.MethodDelete, "/api/tours/"+tc.tourID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
