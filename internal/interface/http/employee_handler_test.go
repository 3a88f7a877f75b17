package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilvertex/pipesite-backend/internal/application"
	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/internal/storage"
)

type fakeEmployeeRepo struct {
	docs   map[string]entity.Employee
	nextID int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{docs: map[string]entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	r.nextID++
	e.ID = fmt.Sprintf("emp-%d", r.nextID)
	r.docs[e.ID] = *e
	return nil
}

func (r *fakeEmployeeRepo) All(ctx context.Context) ([]entity.Employee, error) {
	out := make([]entity.Employee, 0, len(r.docs))
	for _, e := range r.docs {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Get(ctx context.Context, id string) (*entity.Employee, error) {
	e, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, id string, patch map[string]any) (*entity.Employee, error) {
	e, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	raw, _ := json.Marshal(e)
	doc := map[string]any{}
	_ = json.Unmarshal(raw, &doc)
	for k, v := range patch {
		doc[k] = v
	}
	merged, _ := json.Marshal(doc)
	var out entity.Employee
	if err := json.Unmarshal(merged, &out); err != nil {
		return nil, err
	}
	r.docs[id] = out
	return &out, nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) (*entity.Employee, error) {
	e, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.docs, id)
	return &e, nil
}

type fakeStore struct {
	blobs map[string]bool
	putN  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{blobs: map[string]bool{}}
}

func (s *fakeStore) Put(ctx context.Context, folder string, up storage.Upload) (storage.FileRef, error) {
	s.putN++
	path := fmt.Sprintf("%s/%d_%s", folder, s.putN, up.Filename)
	s.blobs[path] = true
	return storage.FileRef{Kind: storage.KindLocal, Path: path, URL: "http://files/" + path}, nil
}

func (s *fakeStore) Delete(ctx context.Context, ref storage.FileRef) error {
	delete(s.blobs, ref.Path)
	return nil
}

func employeeTestRouter() (*gin.Engine, *fakeEmployeeRepo, *fakeStore) {
	gin.SetMode(gin.TestMode)
	repo := newFakeEmployeeRepo()
	store := newFakeStore()
	sync := application.NewFileSyncer[entity.Employee, *entity.Employee](repo, store, "employees", "file", nil)
	h := NewEmployeeHandler(sync, nil)

	r := gin.New()
	r.POST("/createEmployee", h.Create)
	r.PUT("/updateEmployee/:id", h.Update)
	r.GET("/admin/employee", h.List)
	r.GET("/admin/employee/getUser/:id", h.Get)
	r.DELETE("/admin/employee/deleteUser/:id", h.Delete)
	return r, repo, store
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileBody string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(fileBody))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func decodeData(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope.Data
}

func TestEmployeeCreateWithPhoto(t *testing.T) {
	r, repo, store := employeeTestRouter()

	body, ct := multipartBody(t, map[string]string{
		"name":       "Aisha",
		"department": "Engineering",
		"jobTitle":   "Lead",
	}, "file", "photo.png", "img")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/createEmployee", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w.Body)
	assert.Equal(t, "Aisha", data["name"])
	assert.NotEmpty(t, data["fileUrl"])
	assert.Len(t, repo.docs, 1)
	assert.Len(t, store.blobs, 1)
}

func TestEmployeeCreateWithoutPhoto(t *testing.T) {
	r, repo, store := employeeTestRouter()

	body, ct := multipartBody(t, map[string]string{"name": "Noor"}, "", "", "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/createEmployee", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w.Body)
	assert.NotContains(t, data, "fileUrl")
	assert.Len(t, repo.docs, 1)
	assert.Empty(t, store.blobs)
}

func TestEmployeeCreateMissingName(t *testing.T) {
	r, _, _ := employeeTestRouter()

	body, ct := multipartBody(t, map[string]string{"department": "Sales"}, "", "", "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/createEmployee", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeGetMissingIs404(t *testing.T) {
	r, _, _ := employeeTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/employee/getUser/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeUpdateMergesFields(t *testing.T) {
	r, repo, _ := employeeTestRouter()
	repo.docs["emp-9"] = entity.Employee{ID: "emp-9", Name: "Sara", Department: "HR"}

	body, ct := multipartBody(t, map[string]string{"department": "Finance"}, "", "", "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/updateEmployee/emp-9", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w.Body)
	assert.Equal(t, "Finance", data["department"])
	assert.Equal(t, "Sara", data["name"], "absent fields stay untouched")
}

func TestEmployeeUpdateReplacesPhoto(t *testing.T) {
	r, repo, store := employeeTestRouter()
	old := storage.FileRef{Kind: storage.KindLocal, Path: "employees/old.png", URL: "http://files/employees/old.png"}
	store.blobs[old.Path] = true
	repo.docs["emp-9"] = entity.Employee{ID: "emp-9", Name: "Sara", File: old}

	body, ct := multipartBody(t, nil, "file", "new.png", "img2")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/updateEmployee/emp-9", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, store.blobs, old.Path, "old blob removed after replacement")
	assert.Len(t, store.blobs, 1)
	got := repo.docs["emp-9"]
	assert.True(t, strings.HasSuffix(got.File.Path, "new.png"))
}

func TestEmployeeDeleteRemovesBlob(t *testing.T) {
	r, repo, store := employeeTestRouter()
	ref := storage.FileRef{Kind: storage.KindLocal, Path: "employees/h.png", URL: "http://files/employees/h.png"}
	store.blobs[ref.Path] = true
	repo.docs["emp-1"] = entity.Employee{ID: "emp-1", Name: "Hana", File: ref}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/employee/deleteUser/emp-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, repo.docs)
	assert.Empty(t, store.blobs)
}

func TestEmployeeList(t *testing.T) {
	r, repo, _ := employeeTestRouter()
	repo.docs["emp-1"] = entity.Employee{ID: "emp-1", Name: "A"}
	repo.docs["emp-2"] = entity.Employee{ID: "emp-2", Name: "B"}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/employee", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
}
