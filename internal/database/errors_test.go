package database

import (
	"errors"
	"testing"

	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDBError(t *testing.T) {
	t.Run("message includes op, query and cause", func(t *testing.T) {
		err := NewDBError(ErrQueryFailed, "list listings").WithQuery("SELECT * FROM listing")
		assert.Equal(t, "list listings (query: SELECT * FROM listing): query execution failed", err.Error())
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		err := notFound("find user")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestWrapError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, WrapError(nil, "anything"))
	})

	t.Run("chains DBError context", func(t *testing.T) {
		inner := notFound("select user")
		err := WrapError(inner, "fetch page")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "fetch page: select user")
	})

	t.Run("wraps plain errors", func(t *testing.T) {
		cause := errors.New("boom")
		err := WrapError(cause, "set wallet")

		assert.ErrorIs(t, err, cause)
		var dbErr *DBError
		assert.True(t, errors.As(err, &dbErr))
	})
}
