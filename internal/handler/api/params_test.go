//go:build unit

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitCtx(query string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestParseLimitQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("absent limit is nil", func(t *testing.T) {
		limit, err := parseLimitQuery(limitCtx(""))
		require.NoError(t, err)
		assert.Nil(t, limit)
	})

	t.Run("boundary values parse", func(t *testing.T) {
		for _, q := range []string{"1", "100"} {
			limit, err := parseLimitQuery(limitCtx("limit=" + q))
			require.NoError(t, err, q)
			require.NotNil(t, limit, q)
		}

		limit, err := parseLimitQuery(limitCtx("limit=42"))
		require.NoError(t, err)
		assert.EqualValues(t, 42, *limit)
	})

	t.Run("out-of-range or malformed values error", func(t *testing.T) {
		for _, q := range []string{"0", "-3", "101", "abc", "1.5"} {
			_, err := parseLimitQuery(limitCtx("limit=" + q))
			require.Error(t, err, q)
		}
	})
}
