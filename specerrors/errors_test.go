package specerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveError(t *testing.T) {
	cause := errors.New("no such type registered")
	err := &ResolveError{
		Token:    "acme.Widget",
		Resource: "/widgets",
		Cause:    cause,
	}

	assert.ErrorIs(t, err, ErrResolve)
	assert.NotErrorIs(t, err, ErrAction)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), `cannot resolve type "acme.Widget"`)
	assert.Contains(t, err.Error(), "/widgets")
	assert.Contains(t, err.Error(), "no such type registered")
}

func TestResolveError_As(t *testing.T) {
	var err error = fmt.Errorf("classify: %w", &ResolveError{Token: "bogus"})

	var resErr *ResolveError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "bogus", resErr.Token)
}

func TestActionError(t *testing.T) {
	err := &ActionError{Action: "FETCH", Resource: "/users", RoutePath: "/login"}

	assert.ErrorIs(t, err, ErrAction)
	assert.ErrorIs(t, err, ErrAssembly, "unknown actions fail the whole assembly")
	assert.Equal(t, `unknown route action "FETCH" on resource /users/login`, err.Error())
}
