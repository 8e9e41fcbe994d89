package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	ok := limiter.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest("GET", "/api/user/profile", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		ok.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, 200, send("10.0.0.1:1234"))
	assert.Equal(t, 200, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234"))
	// other clients keep their own budget
	assert.Equal(t, 200, send("10.0.0.2:1234"))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("dinamite")
	require.NoError(t, err)
	assert.NotEqual(t, "dinamite", hash)
	assert.NotEmpty(t, hash)
}

func TestIsValidToken(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}
	assert.False(t, env.isValidToken("not-a-jwt"))
}
