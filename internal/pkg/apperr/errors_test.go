package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestIsMatchesCopies(t *testing.T) {
	err := errors.Wrap(ErrTopicNotFound.Msg("topic %q not found", "deep"), "lookup")
	assert.ErrorIs(t, err, ErrTopicNotFound)
	assert.NotErrorIs(t, err, ErrRouteNotFound)

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, `topic "deep" not found`, appErr.Message)
}
