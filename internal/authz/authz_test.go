package authz

import (
	"testing"

	"lankastay-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanWrite(t *testing.T) {
	assert.True(t, CanWrite(42, 42))
	assert.False(t, CanWrite(42, 43))
	assert.False(t, CanWrite(0, 0), "anonymous callers never own rows")
}

func TestCanRead(t *testing.T) {
	// Owners read their own rows regardless of status.
	assert.True(t, CanRead(42, 42, models.StatusDraft))
	assert.True(t, CanRead(42, 42, models.StatusPublished))

	// Everyone reads published rows.
	assert.True(t, CanRead(0, 42, models.StatusPublished))
	assert.True(t, CanRead(7, 42, models.StatusPublished))

	// Drafts stay private.
	assert.False(t, CanRead(0, 42, models.StatusDraft))
	assert.False(t, CanRead(7, 42, models.StatusDraft))
}
