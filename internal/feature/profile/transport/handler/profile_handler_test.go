package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/profile/domain/entity"
	"ccps_backend/internal/feature/profile/usecase"
	"ccps_backend/internal/platform/authz"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockProfileUsecase struct {
	MeFunc      func(ctx context.Context, actor authz.Identity) (*usecase.Profile, error)
	ForUserFunc func(ctx context.Context, actor authz.Identity, userID uint) (*usecase.Profile, error)
	CreateFunc  func(ctx context.Context, actor authz.Identity, in usecase.ProfileInput) (*usecase.Profile, error)
	UpdateFunc  func(ctx context.Context, actor authz.Identity, in usecase.ProfileInput) (*usecase.Profile, error)
	DeleteFunc  func(ctx context.Context, actor authz.Identity) error
}

func (m *mockProfileUsecase) Me(ctx context.Context, actor authz.Identity) (*usecase.Profile, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, actor)
	}
	return &usecase.Profile{User: authentity.User{ID: actor.UserID}}, nil
}

func (m *mockProfileUsecase) ForUser(ctx context.Context, actor authz.Identity, userID uint) (*usecase.Profile, error) {
	if m.ForUserFunc != nil {
		return m.ForUserFunc(ctx, actor, userID)
	}
	return &usecase.Profile{User: authentity.User{ID: userID}}, nil
}

func (m *mockProfileUsecase) Create(ctx context.Context, actor authz.Identity, in usecase.ProfileInput) (*usecase.Profile, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, in)
	}
	return &usecase.Profile{User: authentity.User{ID: actor.UserID}, Student: &entity.StudentProfile{UserID: actor.UserID}}, nil
}

func (m *mockProfileUsecase) Update(ctx context.Context, actor authz.Identity, in usecase.ProfileInput) (*usecase.Profile, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, in)
	}
	return &usecase.Profile{User: authentity.User{ID: actor.UserID}}, nil
}

func (m *mockProfileUsecase) Delete(ctx context.Context, actor authz.Identity) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor)
	}
	return nil
}

func newRouter(uc ProfileUsecase, id authz.Identity) *gin.Engine {
	h := NewProfileHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		authz.SetIdentity(c, id)
		c.Next()
	})
	r.GET("/profile/me", h.Me)
	r.POST("/profile/me", h.Create)
	r.PUT("/profile/me", h.Update)
	r.DELETE("/profile/me", h.Delete)
	r.GET("/profile/:userId", h.ForUser)
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var student = authz.Identity{UserID: 1, Role: authentity.RoleStudent}

func TestProfileHandler_Me(t *testing.T) {
	t.Parallel()

	cgpa := 9.1
	uc := &mockProfileUsecase{MeFunc: func(context.Context, authz.Identity) (*usecase.Profile, error) {
		return &usecase.Profile{
			User:    authentity.User{ID: 1, Name: "Asha", Email: "asha@campus.edu", Password: "$2a$hash", Role: authentity.RoleStudent},
			Student: &entity.StudentProfile{StudentID: "CS21-001", CGPA: &cgpa, ProfilePhotoURL: "https://img"},
		}, nil
	}}
	w := do(newRouter(uc, student), http.MethodGet, "/profile/me", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CS21-001", body["studentID"])
	assert.Equal(t, 9.1, body["cgpa"])
	assert.Equal(t, "https://img", body["imageUrl"])
	assert.Equal(t, true, body["hasProfile"])
	assert.NotContains(t, w.Body.String(), "$2a$hash")
}

func TestProfileHandler_Create(t *testing.T) {
	t.Parallel()

	var got usecase.ProfileInput
	uc := &mockProfileUsecase{CreateFunc: func(_ context.Context, actor authz.Identity, in usecase.ProfileInput) (*usecase.Profile, error) {
		got = in
		return &usecase.Profile{User: authentity.User{ID: actor.UserID}, Student: &entity.StudentProfile{UserID: actor.UserID}}, nil
	}}
	r := newRouter(uc, student)

	w := do(r, http.MethodPost, "/profile/me", gin.H{"studentID": "CS21-001", "discipline": "CSE", "batch": 2025, "status": "active", "resumeUrl": "https://cv"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, got.ResumeLink)
	assert.Equal(t, "https://cv", *got.ResumeLink)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/profile/me", gin.H{"cgpa": 11}).Code)
}

func TestProfileHandler_Errors(t *testing.T) {
	t.Parallel()

	uc := &mockProfileUsecase{
		CreateFunc: func(context.Context, authz.Identity, usecase.ProfileInput) (*usecase.Profile, error) {
			return nil, usecase.ErrProfileExists
		},
		UpdateFunc: func(context.Context, authz.Identity, usecase.ProfileInput) (*usecase.Profile, error) {
			return nil, usecase.ErrProfileNotFound
		},
		DeleteFunc: func(context.Context, authz.Identity) error { return usecase.ErrProfileNotFound },
		ForUserFunc: func(context.Context, authz.Identity, uint) (*usecase.Profile, error) {
			return nil, authz.ErrForbidden
		},
	}
	r := newRouter(uc, student)

	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/profile/me", gin.H{}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/profile/me", gin.H{"program": "x"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/profile/me", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/profile/3", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/profile/abc", nil).Code)
}
