package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c0d3g3n/codegen-api/internal/auth"
	"github.com/c0d3g3n/codegen-api/internal/handler"
	"github.com/c0d3g3n/codegen-api/internal/model"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
	"github.com/c0d3g3n/codegen-api/internal/validation"
)

type stubAuthUsecase struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
}

func (s *stubAuthUsecase) Register(context.Context, usecase.RegisterParams) (*model.User, string, error) {
	return &model.User{ID: 1}, s.registerToken, s.registerErr
}

func (s *stubAuthUsecase) Login(context.Context, usecase.LoginParams) (string, error) {
	return s.loginToken, s.loginErr
}

type stubPasswordResetUsecase struct{}

func (stubPasswordResetUsecase) Request(context.Context, string) error { return nil }

func (stubPasswordResetUsecase) Confirm(context.Context, string, string) error { return nil }

type stubConversionUsecase struct {
	history []model.Conversion
}

func (s *stubConversionUsecase) Convert(
	_ context.Context,
	userID int64,
	params usecase.ConvertParams,
) (*model.Conversion, error) {
	return &model.Conversion{UserID: userID, ModernCode: "x = 5"}, nil
}

func (s *stubConversionUsecase) History(context.Context, int64) ([]model.Conversion, error) {
	return s.history, nil
}

type stubFeedbackUsecase struct{}

func (stubFeedbackUsecase) Submit(
	_ context.Context,
	userID int64,
	params usecase.FeedbackParams,
) (*model.Feedback, error) {
	return &model.Feedback{ID: 1, UserID: userID}, nil
}

func (stubFeedbackUsecase) ListByUser(context.Context, int64) ([]model.Feedback, error) {
	return nil, nil
}

type stubAdminUsecase struct {
	err error
}

func (s *stubAdminUsecase) DeleteUser(context.Context, int64, int64) error { return s.err }

func (s *stubAdminUsecase) SetAdmin(context.Context, int64, int64, bool) error { return s.err }

type fixture struct {
	authority *auth.Authority
	auth      *stubAuthUsecase
	admin     *stubAdminUsecase
	router    http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	validate, trans, err := validation.New()
	require.NoError(t, err)

	logger := zerolog.Nop()
	f := &fixture{
		authority: auth.NewAuthority([]byte("test-signing-secret"), time.Hour),
		auth:      &stubAuthUsecase{},
		admin:     &stubAdminUsecase{},
	}

	h := handler.New(
		f.auth,
		stubPasswordResetUsecase{},
		&stubConversionUsecase{},
		stubFeedbackUsecase{},
		f.admin,
		f.authority,
		validate,
		trans,
		&logger,
	)
	f.router = handler.NewRouter(h, &logger, []string{"*"})

	return f
}

func (f *fixture) request(t *testing.T, method, path, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func TestRequireAuth(t *testing.T) {
	f := newFixture(t)

	token, err := f.authority.Mint(42, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.request(t, http.MethodGet, "/history", "", tt.header)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	f.auth.registerToken = "issued-token"

	rec := f.request(t, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","password":"password1"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "issued-token")
}

func TestRegister_ValidationFailure(t *testing.T) {
	f := newFixture(t)

	rec := f.request(t, http.MethodPost, "/register",
		`{"username":"alice","email":"not-an-email","password":"short"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestRegister_Conflict(t *testing.T) {
	f := newFixture(t)
	f.auth.registerErr = usecase.ErrUserAlreadyExists

	rec := f.request(t, http.MethodPost, "/register",
		`{"username":"alice","email":"a@x.com","password":"password1"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	f.auth.loginErr = usecase.ErrInvalidCredentials

	rec := f.request(t, http.MethodPost, "/login",
		`{"username":"alice","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The body never reveals whether the username exists.
	assert.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestDeleteUser_Forbidden(t *testing.T) {
	f := newFixture(t)
	f.admin.err = usecase.ErrForbidden

	token, err := f.authority.Mint(42, time.Minute)
	require.NoError(t, err)

	rec := f.request(t, http.MethodDelete, "/admin/users/7", "", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestConvert(t *testing.T) {
	f := newFixture(t)

	token, err := f.authority.Mint(42, time.Minute)
	require.NoError(t, err)

	rec := f.request(t, http.MethodPost, "/convert",
		`{"legacy_code":"MOVE 5 TO X.","source_language":"COBOL","target_language":"Python"}`,
		"Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "x = 5")
}
