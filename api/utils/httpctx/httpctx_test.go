package httpctx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithHeader(value string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodPost, "/", nil)
	if value != "" {
		c.Request.Header.Set(BracketSeedHeader, value)
	}
	return c
}

func TestBracketSeed(t *testing.T) {
	seed, ok, err := BracketSeed(contextWithHeader(" 42 "))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), seed)

	_, ok, err = BracketSeed(contextWithHeader(""))
	assert.NoError(t, err)
	assert.False(t, ok)

	for _, bad := range []string{"abc", "-3", "99999999999999999999"} {
		_, _, err = BracketSeed(contextWithHeader(bad))
		assert.ErrorIs(t, err, ErrInvalidSeed, bad)
	}
}
