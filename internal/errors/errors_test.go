package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderMarksSentinel(t *testing.T) {
	err := NewError("invoice not found").
		WithHint("Invoice not found").
		Mark(ErrNotFound)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, http.StatusNotFound, HTTPStatusFromErr(err))
}

func TestBuilderWrapsExistingError(t *testing.T) {
	inner := NewError("lookup failed").
		WithHint("Client not found").
		Mark(ErrNotFound)

	outer := WithError(inner).
		WithHintf("Failed to load client %s", "client-9").
		Mark(ErrNotFound)

	assert.True(t, IsNotFound(outer))
	// the deepest hint stays the display message
	assert.Equal(t, "Client not found", NewErrorResponse(outer).Error.Display)
}

func TestNewErrorResponse(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedDisplay string
		expectedDetails map[string]any
	}{
		{
			name: "hint becomes display message",
			err: NewError("validation failed").
				WithHint("Please select a client").
				Mark(ErrValidation),
			expectedDisplay: "Please select a client",
		},
		{
			name:            "unhinted error falls back to generic message",
			err:             NewError("boom").Mark(ErrSystem),
			expectedDisplay: "An unexpected error occurred",
		},
		{
			name: "reportable details survive into the envelope",
			err: NewError("duplicate id").
				WithHint("Invoice already exists").
				WithReportableDetails(map[string]any{"id": "inv-1"}).
				Mark(ErrAlreadyExists),
			expectedDisplay: "Invoice already exists",
			expectedDetails: map[string]any{"id": "inv-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := NewErrorResponse(tc.err)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.expectedDisplay, resp.Error.Display)
			if tc.expectedDetails == nil {
				assert.Empty(t, resp.Error.Details)
			} else {
				assert.Equal(t, tc.expectedDetails, resp.Error.Details)
			}
		})
	}
}

func TestHTTPStatusFromErr(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"already exists", ErrAlreadyExists, http.StatusConflict},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"invalid operation", ErrInvalidOperation, http.StatusBadRequest},
		{"system", ErrSystem, http.StatusInternalServerError},
		{"unmarked", stderrors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, HTTPStatusFromErr(tc.err))
		})
	}
}
