package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hustlehub/internal/data/entity"
	"hustlehub/pkg/token"
	"hustlehub/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func authFixture(t *testing.T) (*token.Service, *stubUserRepo, http.Handler, *entity.User) {
	t.Helper()

	tokens := token.NewService("test-secret", time.Hour)
	repo := &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}

	user := &entity.User{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:      "a@b.com",
		FirstName:  "A",
		LastName:   "B",
		IsProvider: false,
	}
	repo.users[user.ID] = user

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			t.Errorf("principal missing from context")
		}
		if principal != user.ID {
			t.Errorf("principal = %s, want %s", principal, user.ID)
		}
		w.WriteHeader(http.StatusOK)
	})

	return tokens, repo, Authenticate(tokens, repo, zap.NewNop())(next), user
}

func doRequest(handler http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body
}

func TestAuthenticate_Success(t *testing.T) {
	tokens, _, handler, user := authFixture(t)

	tokenString, err := tokens.Issue(user.ID, user.Email)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	rec := doRequest(handler, "Bearer "+tokenString)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	_, _, handler, _ := authFixture(t)

	rec := doRequest(handler, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := decodeError(t, rec); body.Error == "" {
		t.Errorf("expected error field in body")
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokens, _, handler, user := authFixture(t)

	tokenString, _ := tokens.Issue(user.ID, user.Email)

	for _, header := range []string{"Token " + tokenString, tokenString, "Bearer"} {
		rec := doRequest(handler, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	_, _, handler, _ := authFixture(t)

	rec := doRequest(handler, "Bearer garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != utils.CodeInvalidToken {
		t.Errorf("code = %s, want %s", body.Code, utils.CodeInvalidToken)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	_, _, handler, user := authFixture(t)

	now := time.Now()
	claims := token.Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-3 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	rec := doRequest(handler, "Bearer "+expired)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != utils.CodeExpiredToken {
		t.Errorf("code = %s, want %s", body.Code, utils.CodeExpiredToken)
	}
}

func TestAuthenticate_UserDeletedAfterIssue(t *testing.T) {
	tokens, repo, handler, user := authFixture(t)

	tokenString, err := tokens.Issue(user.ID, user.Email)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	delete(repo.users, user.ID)

	rec := doRequest(handler, "Bearer "+tokenString)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
