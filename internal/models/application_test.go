package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoldsSeat(t *testing.T) {
	t.Parallel()

	assert.True(t, HoldsSeat(ApplicationNew))
	assert.True(t, HoldsSeat(ApplicationContacted))
	assert.True(t, HoldsSeat(ApplicationConfirmed))
	assert.False(t, HoldsSeat(ApplicationCancelled))
	assert.False(t, HoldsSeat(ApplicationCompleted))
}
