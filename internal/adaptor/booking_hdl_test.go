package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hustlehub/internal/dto/response"
	"hustlehub/internal/usecase"
	"hustlehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubBookingService struct {
	createErr error
	created   int
}

func (s *stubBookingService) Create(_ context.Context, userID, serviceID uuid.UUID) (*response.BookingCreatedResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created++
	return &response.BookingCreatedResponse{BookingID: uuid.New().String(), Status: "created"}, nil
}

func (s *stubBookingService) ListByUser(_ context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	return []response.BookingResponse{}, nil
}

func postBooking(h *BookingHandler, principal uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(utils.SetUserContext(req.Context(), principal))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestBookingHandler_Create_Success(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc, zap.NewNop())

	userID := uuid.New()
	body := fmt.Sprintf(`{"user_id":%q,"service_id":%q}`, userID, uuid.New())

	rec := postBooking(h, userID, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if svc.created != 1 {
		t.Errorf("service called %d times, want 1", svc.created)
	}
}

func TestBookingHandler_Create_ServiceNotFound(t *testing.T) {
	svc := &stubBookingService{createErr: usecase.ErrServiceNotFound}
	h := NewBookingHandler(svc, zap.NewNop())

	userID := uuid.New()
	body := fmt.Sprintf(`{"user_id":%q,"service_id":%q}`, userID, uuid.New())

	rec := postBooking(h, userID, body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestBookingHandler_Create_PrincipalMismatch(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc, zap.NewNop())

	body := fmt.Sprintf(`{"user_id":%q,"service_id":%q}`, uuid.New(), uuid.New())

	rec := postBooking(h, uuid.New(), body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if svc.created != 0 {
		t.Errorf("service must not be called for another user's booking")
	}
}

func TestBookingHandler_Create_MissingFields(t *testing.T) {
	svc := &stubBookingService{}
	h := NewBookingHandler(svc, zap.NewNop())

	rec := postBooking(h, uuid.New(), `{"service_id":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
