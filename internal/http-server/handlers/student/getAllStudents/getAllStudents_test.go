package getAllStudents

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bekmanvision/uniqer/internal/http-server/handlers/student/getAllStudents/mocks"
	"github.com/bekmanvision/uniqer/internal/lib/logger/handlers/slogdiscard"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllStudentsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(lister *mocks.StudentLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Search with pagination",
			url:  "/api/students?search=bekova&status=CONFIRMED&page=2&page_size=10",
			mockSetup: func(lister *mocks.StudentLister) {
				lister.On("GetAllStudents", storage.StudentFilter{
					Status:   models.StudentConfirmed,
					Search:   "bekova",
					Page:     2,
					PageSize: 10,
				}).Return([]models.Student{
					{ID: "student-11", FullName: "Aruzhan Bekova", Status: models.StudentConfirmed},
				}, 11, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"total":11`)
				assert.Contains(t, body, `"total_pages":2`)
			},
		},
		{
			name: "Bad pagination falls back to defaults",
			url:  "/api/students?page=-1&page_size=9999",
			mockSetup: func(lister *mocks.StudentLister) {
				lister.On("GetAllStudents", storage.StudentFilter{
					Page:     1,
					PageSize: 20,
				}).Return([]models.Student{}, 0, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"page":1`)
				assert.Contains(t, body, `"page_size":20`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewStudentLister(t)
			tc.mockSetup(lister)

			handler := New(logger, lister)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
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
