package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contentcraft-be/internal/apperrors"
	"contentcraft-be/internal/dto"
	"contentcraft-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContentService records the identity each call was scoped to.
type fakeContentService struct {
	lastUserId uuid.UUID
	response   *dto.ContentResponse
	err        error
}

func (s *fakeContentService) Save(_ context.Context, userId uuid.UUID, _ *dto.SaveContentRequest) (*dto.ContentResponse, error) {
	s.lastUserId = userId
	return s.response, s.err
}

func (s *fakeContentService) Show(_ context.Context, userId uuid.UUID, _ uuid.UUID) (*dto.ContentResponse, error) {
	s.lastUserId = userId
	return s.response, s.err
}

func (s *fakeContentService) Update(_ context.Context, userId uuid.UUID, _ *dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	s.lastUserId = userId
	return s.response, s.err
}

func (s *fakeContentService) Delete(_ context.Context, userId uuid.UUID, _ uuid.UUID) error {
	s.lastUserId = userId
	return s.err
}

func (s *fakeContentService) List(_ context.Context, userId uuid.UUID, _ *dto.ListContentQuery) ([]*dto.ContentResponse, error) {
	s.lastUserId = userId
	if s.err != nil {
		return nil, s.err
	}
	if s.response == nil {
		return nil, nil
	}
	return []*dto.ContentResponse{s.response}, nil
}

func newTestApp(svc *fakeContentService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewContentController(svc).RegisterRoutes(api)
	return app
}

func signToken(t *testing.T, secret string, userId string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func TestContentRoutesRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	app := newTestApp(&fakeContentService{})

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
		{"token signed with a different key", signToken(t, "other-secret", uuid.NewString())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, app, "GET", "/api/content/v1", tt.token)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Authentication required", body["error"])
		})
	}
}

func TestContentRoutesScopeToTokenIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	userId := uuid.New()
	svc := &fakeContentService{response: &dto.ContentResponse{Id: uuid.New(), Title: "T"}}
	app := newTestApp(svc)

	token := signToken(t, "unit-test-secret", userId.String())
	resp, body := doRequest(t, app, "GET", "/api/content/v1", token)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, userId, svc.lastUserId, "service must be called with the token identity")
}

func TestShowRejectsNonUUIDPathId(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	app := newTestApp(&fakeContentService{})
	token := signToken(t, "unit-test-secret", uuid.NewString())

	resp, body := doRequest(t, app, "GET", "/api/content/v1/not-a-uuid", token)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Content not found", body["error"])
}

func TestServiceErrorsMapToStatus(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	token := signToken(t, "unit-test-secret", uuid.NewString())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found",
			err:        apperrors.NewNotFound("Content"),
			wantStatus: http.StatusNotFound,
			wantError:  "Content not found",
		},
		{
			name:       "storage fault stays generic",
			err:        apperrors.NewStorage(assert.AnError),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeContentService{err: tt.err})
			resp, body := doRequest(t, app, "GET", "/api/content/v1/"+uuid.NewString(), token)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}
