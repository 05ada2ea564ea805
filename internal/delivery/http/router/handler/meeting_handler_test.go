package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freshware/internal/delivery/http/middleware"
	"freshware/internal/delivery/http/validator"
	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMeetingUsecase struct {
	createFn func(ctx context.Context, input usecase.CreateMeetingInput) (*entity.Meeting, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	updateFn func(ctx context.Context, input usecase.UpdateMeetingInput) (*entity.Meeting, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
	listFn   func(ctx context.Context, accountID *uuid.UUID) ([]*entity.Meeting, error)
}

func (m *mockMeetingUsecase) CreateMeeting(ctx context.Context, input usecase.CreateMeetingInput) (*entity.Meeting, error) {
	return m.createFn(ctx, input)
}

func (m *mockMeetingUsecase) GetMeeting(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	return m.getFn(ctx, id)
}

func (m *mockMeetingUsecase) UpdateMeeting(ctx context.Context, input usecase.UpdateMeetingInput) (*entity.Meeting, error) {
	return m.updateFn(ctx, input)
}

func (m *mockMeetingUsecase) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockMeetingUsecase) ListMeetings(ctx context.Context, accountID *uuid.UUID) ([]*entity.Meeting, error) {
	return m.listFn(ctx, accountID)
}

func newMeetingContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestMeetingHandler_CreateRejectsUnparseableScheduledAt(t *testing.T) {
	uc := &mockMeetingUsecase{
		createFn: func(_ context.Context, _ usecase.CreateMeetingInput) (*entity.Meeting, error) {
			t.Fatal("meeting creation must not run for an unparseable time")

			return nil, nil
		},
	}
	h := NewMeetingHandler(uc)

	body := `{"accountId":"` + uuid.NewString() + `","contactName":"Ada","scheduledAt":"next tuesday"}`
	c, rec := newMeetingContext(http.MethodPost, "/api/meetings", body)

	err := h.Create(c)

	requireValidationError(t, err)
	assert.False(t, c.Response().Committed, "handler must leave the response to the error handler")

	// The central error handler turns the error into the 400 envelope.
	middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError(err, c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestMeetingHandler_CreateRejectsUnparseableAccountID(t *testing.T) {
	uc := &mockMeetingUsecase{
		createFn: func(_ context.Context, _ usecase.CreateMeetingInput) (*entity.Meeting, error) {
			t.Fatal("meeting creation must not run for a bad account id")

			return nil, nil
		},
	}
	h := NewMeetingHandler(uc)

	body := `{"accountId":"not-a-uuid","contactName":"Ada","scheduledAt":"2026-03-01T10:00:00Z"}`
	c, _ := newMeetingContext(http.MethodPost, "/api/meetings", body)

	requireValidationError(t, h.Create(c))
}

func TestMeetingHandler_CreateRejectsUnparseableEndsAt(t *testing.T) {
	uc := &mockMeetingUsecase{
		createFn: func(_ context.Context, _ usecase.CreateMeetingInput) (*entity.Meeting, error) {
			t.Fatal("meeting creation must not run for an unparseable end time")

			return nil, nil
		},
	}
	h := NewMeetingHandler(uc)

	body := `{"accountId":"` + uuid.NewString() + `","contactName":"Ada","scheduledAt":"2026-03-01T10:00:00Z","endsAt":"noonish"}`
	c, _ := newMeetingContext(http.MethodPost, "/api/meetings", body)

	requireValidationError(t, h.Create(c))
}

func TestMeetingHandler_GetRejectsUnparseablePathID(t *testing.T) {
	uc := &mockMeetingUsecase{
		getFn: func(_ context.Context, _ uuid.UUID) (*entity.Meeting, error) {
			t.Fatal("lookup must not run for a bad path id")

			return nil, nil
		},
	}
	h := NewMeetingHandler(uc)

	c, _ := newMeetingContext(http.MethodGet, "/api/meetings/not-a-uuid", "")
	c.SetPath("/api/meetings/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	requireValidationError(t, h.Get(c))
}

func TestMeetingHandler_ListRejectsUnparseableAccountFilter(t *testing.T) {
	uc := &mockMeetingUsecase{
		listFn: func(_ context.Context, _ *uuid.UUID) ([]*entity.Meeting, error) {
			t.Fatal("listing must not run for a bad account filter")

			return nil, nil
		},
	}
	h := NewMeetingHandler(uc)

	c, _ := newMeetingContext(http.MethodGet, "/api/meetings?account_id=not-a-uuid", "")

	requireValidationError(t, h.List(c))
}
