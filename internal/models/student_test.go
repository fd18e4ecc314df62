package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionStudent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		from    StudentStatus
		to      StudentStatus
		allowed bool
	}{
		{"Forward one stage", StudentRegistered, StudentConfirmed, true},
		{"Skip a stage", StudentRegistered, StudentPaid, true},
		{"Straight to completed", StudentConfirmed, StudentCompleted, true},
		{"Cancel from registered", StudentRegistered, StudentCancelled, true},
		{"Cancel from paid", StudentPaid, StudentCancelled, true},
		{"Same status is a no-op", StudentPaid, StudentPaid, true},
		{"Backward move", StudentPaid, StudentConfirmed, false},
		{"Back to registered", StudentConfirmed, StudentRegistered, false},
		{"Out of completed", StudentCompleted, StudentPaid, false},
		{"Out of cancelled", StudentCancelled, StudentRegistered, false},
		{"Cancel a completed student", StudentCompleted, StudentCancelled, false},
		{"Unknown target", StudentRegistered, StudentStatus("ENROLLED"), false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.allowed, CanTransitionStudent(tc.from, tc.to))
		})
	}
}
