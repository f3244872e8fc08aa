//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hotel-desk/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse decodes the body into target for 2xx statuses when target is not nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "response is not JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains msg. An empty msg skips the text check.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var res httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), "error response is not JSON: %s", w.Body.String())
	assert.NotEmpty(t, res.Error.Message)

	if msg != "" {
		assert.Contains(t, res.Error.Message, msg)
	}
}
