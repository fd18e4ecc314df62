package createStudent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bekmanvision/uniqer/internal/http-server/handlers/student/createStudent/mocks"
	"github.com/bekmanvision/uniqer/internal/lib/logger/handlers/slogdiscard"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateStudentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{
		"full_name": "Aruzhan Bekova",
		"phone": "+7 (701) 555-11-22",
		"city": "Shymkent",
		"school": "NIS Shymkent",
		"grade": "11",
		"age": 17,
		"language": "KZ",
		"direction": "IT",
		"parent_name": "Gulnara Bekova",
		"parent_phone": "+7 701 555 33 44",
		"contact_parent": "MOTHER",
		"tour_id": "tour-1"
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(creator *mocks.StudentCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success normalizes phones",
			requestBody: validBody,
			mockSetup: func(creator *mocks.StudentCreator) {
				creator.On("CreateStudent", mock.MatchedBy(func(s models.Student) bool {
					return s.Phone == "77015551122" &&
						s.ParentPhone == "77015553344" &&
						s.ContactParent == models.ContactMother
				})).Return(&models.Student{
					ID:       "student-1",
					FullName: "Aruzhan Bekova",
					Status:   models.StudentRegistered,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"REGISTERED"`)
			},
		},
		{
			name:        "Unknown tour",
			requestBody: validBody,
			mockSetup: func(creator *mocks.StudentCreator) {
				creator.On("CreateStudent", mock.AnythingOfType("models.Student")).
					Return(nil, storage.ErrTourNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "tour not found")
			},
		},
		{
			name:           "Missing parent name",
			requestBody:    `{"full_name":"Aruzhan Bekova","phone":"77015551122","city":"Shymkent","school":"NIS","grade":"11","age":17,"language":"KZ","direction":"IT","parent_phone":"77015553344","contact_parent":"MOTHER"}`,
			mockSetup:      func(creator *mocks.StudentCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field ParentName is a required field")
			},
		},
		{
			name:           "Invalid contact parent",
			requestBody:    `{"full_name":"Aruzhan Bekova","phone":"77015551122","city":"Shymkent","school":"NIS","grade":"11","age":17,"language":"KZ","direction":"IT","parent_name":"Gulnara","parent_phone":"77015553344","contact_parent":"AUNT"}`,
			mockSetup:      func(creator *mocks.StudentCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "ContactParent")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewStudentCreator(t)
			tc.mockSetup(creator)

			handler := New(logger, creator)

			req, err := http.NewRequest(http.MethodPost, "/api/students", bytes.NewBufferString(tc.requestBody))
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
