package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilvertex/pipesite-backend/internal/application"
	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
	"github.com/dilvertex/pipesite-backend/pkg/validation"
)

type fakeAdminRepo struct {
	byName map[string]*entity.Admin
	nextID int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byName: map[string]*entity.Admin{}}
}

func (r *fakeAdminRepo) Create(ctx context.Context, a *entity.Admin) error {
	r.nextID++
	a.ID = fmt.Sprintf("adm-%d", r.nextID)
	a.CreatedAt = time.Now()
	cp := *a
	r.byName[a.Username] = &cp
	return nil
}

func (r *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	a, ok := r.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func adminAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := application.NewAdminService(newFakeAdminRepo(), jwt, 4, nil)
	h := NewAdminAuthHandler(svc, nil, nil)

	r := gin.New()
	r.POST("/admin/signup", h.Signup)
	r.POST("/admin/login", h.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminSignupThenLoginIssuesToken(t *testing.T) {
	r := adminAuthTestRouter()
	creds := gin.H{"username": "admin", "password": "secret1"}

	w := postJSON(t, r, "/admin/signup", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	signup := decodeData(t, w.Body)
	assert.Equal(t, "admin", signup["username"])
	assert.NotEmpty(t, signup["id"])

	w = postJSON(t, r, "/admin/login", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decodeData(t, w.Body)
	assert.NotEmpty(t, login["token"])
	assert.NotEmpty(t, login["expires_at"])
}

func TestAdminLoginWrongPasswordRejected(t *testing.T) {
	r := adminAuthTestRouter()

	w := postJSON(t, r, "/admin/signup", gin.H{"username": "admin", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/admin/login", gin.H{"username": "admin", "password": "wrong-1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSignupPasswordTooShort(t *testing.T) {
	r := adminAuthTestRouter()

	w := postJSON(t, r, "/admin/signup", gin.H{"username": "admin", "password": "12345"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
