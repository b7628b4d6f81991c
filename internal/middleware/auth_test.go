package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-hub/internal/pkg"
)

type fakeTokenStore struct {
	tokens map[uint64]string
}

func (f *fakeTokenStore) GetUserToken(usrID uint64) (string, error) {
	tok, ok := f.tokens[usrID]
	if !ok {
		return "", errors.New("token not found")
	}
	return tok, nil
}

func (f *fakeTokenStore) ExtendUserToken(usrID uint64) error {
	return nil
}

func newAuthedRouter(tokens TokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		idAny, _ := c.Get(ContextUserIDKey)
		c.JSON(http.StatusOK, gin.H{"user_id": idAny.(uint64)})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	pkg.InitJWT("access-test-secret", "refresh-test-secret")

	pair, err := pkg.GeneratePair(7, "alice@example.com")
	require.NoError(t, err)
	store := &fakeTokenStore{tokens: map[uint64]string{7: pair.AccessToken}}

	w := doGet(newAuthedRouter(store), "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	pkg.InitJWT("access-test-secret", "refresh-test-secret")
	r := newAuthedRouter(&fakeTokenStore{tokens: map[uint64]string{}})

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer not-a-token").Code)
}

func TestAuthMiddleware_SupersededToken(t *testing.T) {
	pkg.InitJWT("access-test-secret", "refresh-test-secret")

	pair, err := pkg.GeneratePair(7, "alice@example.com")
	require.NoError(t, err)

	// the session store holds a different (newer) token: the presented one is stale
	store := &fakeTokenStore{tokens: map[uint64]string{7: "a-newer-token"}}
	w := doGet(newAuthedRouter(store), "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "logged in elsewhere")

	// no session at all is rejected the same way
	empty := &fakeTokenStore{tokens: map[uint64]string{}}
	assert.Equal(t, http.StatusUnauthorized, doGet(newAuthedRouter(empty), "Bearer "+pair.AccessToken).Code)
}
