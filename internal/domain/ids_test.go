package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(uuid.NewString()))
	assert.True(t, IsValidID("7c0f3a52-3f4e-4d8b-9b61-2f0a8f6d1c11"))

	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("court-1"))
	assert.False(t, IsValidID("not-a-uuid-at-all-0000000000000000"))
}
