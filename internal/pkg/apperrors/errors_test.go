package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFoundError{Entity: "offer"}))
	assert.Equal(t, KindStateConflict, KindOf(StateConflictError{Current: "CANCELLED", Op: "finalize"}))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))

	// Kinds survive wrapping
	wrapped := fmt.Errorf("loading offer: %w", NotFoundError{Entity: "offer"})
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFoundError{Entity: "ride"}, http.StatusNotFound},
		{ValidationError{Msg: "bad price"}, http.StatusBadRequest},
		{RoleError{Required: "DRIVER"}, http.StatusForbidden},
		{AccessDeniedError{Msg: "not a party"}, http.StatusForbidden},
		{StateConflictError{Current: "VALIDATED", Op: "cancel"}, http.StatusConflict},
		{InvalidTransitionError{From: "COMPLETED", To: "ONGOING"}, http.StatusConflict},
		{PolicyViolationError{Msg: "passengers may only cancel"}, http.StatusUnprocessableEntity},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err), tc.err.Error())
	}
}
