package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunshock/hipbank/internal/api/shared"
	"github.com/bunshock/hipbank/internal/platform/logger"
)

func TestTrace(t *testing.T) {
	var seenTraceID string
	var sawLogger bool

	h := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		sawLogger = logger.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cards/fetch", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, seenTraceID, 32)
	assert.True(t, sawLogger)
}
