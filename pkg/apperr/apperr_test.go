package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "child profile not found")))
	assert.Equal(t, Validation, KindOf(WithDetails(Validation, "invalid", nil)))
	assert.Equal(t, Internal, KindOf(errors.New("driver: connection reset")))
	assert.Equal(t, Internal, KindOf(nil))
}

func TestKindOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(Conflict, "a user with this email already exists"))
	assert.Equal(t, Conflict, KindOf(err))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "inactive user", MessageOf(New(InactiveAccount, "inactive user")))

	// Internal detail never crosses the boundary.
	assert.Equal(t, "internal server error", MessageOf(errors.New("pq: relation does not exist")))
	assert.Equal(t, "internal server error", MessageOf(Wrap(Internal, "query failed", errors.New("timeout"))))
}

func TestDetailsOf(t *testing.T) {
	details := map[string]string{"subjects": "at least one subject must be specified"}
	err := WithDetails(Validation, "invalid child profile", details)
	assert.Equal(t, details, DetailsOf(err))
	assert.Nil(t, DetailsOf(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := Wrap(NotFound, "user not found", cause)
	assert.ErrorIs(t, err, cause)
}

func TestIsMatchesByKind(t *testing.T) {
	assert.ErrorIs(t, New(NotFound, "user not found"), New(NotFound, "different text"))
	assert.NotErrorIs(t, New(NotFound, "user not found"), New(Forbidden, "nope"))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		InvalidCredentials: http.StatusUnauthorized,
		Unauthenticated:    http.StatusUnauthorized,
		InactiveAccount:    http.StatusBadRequest,
		Conflict:           http.StatusBadRequest,
		Forbidden:          http.StatusForbidden,
		NotFound:           http.StatusNotFound,
		Validation:         http.StatusUnprocessableEntity,
		Internal:           http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), kind.String())
	}
}
