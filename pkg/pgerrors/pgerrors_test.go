package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	unique := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	wrapped := fmt.Errorf("court.repository: failed to execute query: %w", unique)

	assert.Equal(t, CodeUniqueViolation, Code(wrapped))
	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsForeignKeyViolation(wrapped))

	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))

	assert.Empty(t, Code(errors.New("connection refused")))
	assert.Empty(t, Code(nil))
}

func TestConstraint(t *testing.T) {
	fk := &pq.Error{Code: "23503", Constraint: "availabilities_user_id_fkey"}

	assert.Equal(t, "availabilities_user_id_fkey", Constraint(fmt.Errorf("exec: %w", fk)))
	assert.Empty(t, Constraint(errors.New("connection refused")))
}
