package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/session"
)

type fakeSessionReader struct {
	sessions map[string]*session.Session
}

func (f *fakeSessionReader) Get(_ context.Context, token string) (*session.Session, error) {
	sess, ok := f.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func guardedRouter(store SessionReader) (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)

	var seenUserID uuid.UUID
	router := gin.New()
	router.GET("/admin/ping", SessionAuth(store), func(c *gin.Context) {
		seenUserID = c.MustGet("userID").(uuid.UUID)
		c.Status(http.StatusOK)
	})
	return router, &seenUserID
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	router, _ := guardedRouter(&fakeSessionReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_MalformedHeader(t *testing.T) {
	router, _ := guardedRouter(&fakeSessionReader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_UnknownToken(t *testing.T) {
	router, _ := guardedRouter(&fakeSessionReader{sessions: map[string]*session.Session{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_ValidTokenReachesHandler(t *testing.T) {
	userID := uuid.New()
	store := &fakeSessionReader{sessions: map[string]*session.Session{
		"livetoken": {
			Token:     "livetoken",
			UserID:    userID,
			IssuedAt:  time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	router, seenUserID := guardedRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer livetoken")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, *seenUserID)
}

func TestSessionAuth_ConsultsStoreOnEveryRequest(t *testing.T) {
	userID := uuid.New()
	store := &fakeSessionReader{sessions: map[string]*session.Session{
		"livetoken": {Token: "livetoken", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)},
	}}
	router, _ := guardedRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer livetoken")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Simulates logout between two requests with the same token.
	delete(store.sessions, "livetoken")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer livetoken")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
