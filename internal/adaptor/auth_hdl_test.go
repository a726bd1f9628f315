package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hustlehub/internal/dto/request"
	"hustlehub/internal/dto/response"
	"hustlehub/internal/usecase"
	"hustlehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	registered  []*request.RegisterRequest
}

func (s *stubAuthService) Register(_ context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.registered = append(s.registered, req)
	return &response.RegisterResponse{UserID: uuid.New().String()}, nil
}

func (s *stubAuthService) Login(_ context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &response.AuthResponse{
		Token: "token",
		User:  response.UserResponse{ID: uuid.New().String(), Email: req.Email},
	}, nil
}

func (s *stubAuthService) Profile(_ context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	return &response.UserResponse{ID: userID.String(), Email: "a@b.com"}, nil
}

func postJSON(handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(h.Register, "/register",
		`{"email":"a@b.com","password":"pw123456","first_name":"A","last_name":"B"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}

	var body response.RegisterResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.UserID == "" {
		t.Errorf("expected non-empty user_id")
	}
	if len(svc.registered) != 1 {
		t.Errorf("service called %d times, want 1", len(svc.registered))
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(h.Register, "/register", `{"email":"a@b.com"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(svc.registered) != 0 {
		t.Errorf("service must not be called on validation failure")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := &stubAuthService{registerErr: usecase.ErrEmailTaken}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(h.Register, "/register",
		`{"email":"a@b.com","password":"pw123456","first_name":"A","last_name":"B"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body utils.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error != "User already exists" {
		t.Errorf("error = %q, want %q", body.Error, "User already exists")
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(h.Login, "/login", `{"email":"a@b.com","password":"pw123456"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var body response.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Token == "" {
		t.Errorf("expected non-empty token")
	}
	if body.User.Email != "a@b.com" {
		t.Errorf("user email = %s, want a@b.com", body.User.Email)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: usecase.ErrInvalidCredentials}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(h.Login, "/login", `{"email":"a@b.com","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(h.Login, "/login", `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
