package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWebhookUsecase struct {
	ingestFn func(ctx context.Context, input usecase.IngestBookingInput) error
}

func (m *mockWebhookUsecase) IngestBooking(ctx context.Context, input usecase.IngestBookingInput) error {
	return m.ingestFn(ctx, input)
}

func performWebhook(t *testing.T, uc usecase.WebhookUsecase, accountID, secret, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewWebhookHandler(uc, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/youcanbookme/"+accountID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if secret != "" {
		req.Header.Set(HeaderWebhookSecret, secret)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/webhooks/youcanbookme/:accountID")
	c.SetParamNames("accountID")
	c.SetParamValues(accountID)

	require.NoError(t, h.IngestBooking(c))

	return rec
}

func TestWebhookHandler_SuccessReturnsOK(t *testing.T) {
	accountID := uuid.New()
	var got usecase.IngestBookingInput
	uc := &mockWebhookUsecase{
		ingestFn: func(_ context.Context, input usecase.IngestBookingInput) error {
			got = input

			return nil
		},
	}

	body := `{"event":"booking_created","external_id":"bk_1","contact_name":"Ada","start_iso":"2026-03-01T10:00:00Z"}`
	rec := performWebhook(t, uc, accountID.String(), "whsec_secret", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, accountID, got.AccountID)
	assert.Equal(t, "whsec_secret", got.PresentedSecret)
	assert.Equal(t, body, string(got.Body))
}

func TestWebhookHandler_UnparseableAccountIDAnswers404(t *testing.T) {
	uc := &mockWebhookUsecase{
		ingestFn: func(_ context.Context, _ usecase.IngestBookingInput) error {
			t.Fatal("ingestion must not run for a bad tenant id")

			return nil
		},
	}

	rec := performWebhook(t, uc, "not-a-uuid", "whsec_secret", `{}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Integration not connected"}`, rec.Body.String())
}

func TestWebhookHandler_MalformedBodyIsForwardedUndecoded(t *testing.T) {
	// The handler must not decode the body itself: authentication decides the
	// answer first, so an unauthenticated caller with a malformed body still
	// gets 401, never 400.
	var got usecase.IngestBookingInput
	uc := &mockWebhookUsecase{
		ingestFn: func(_ context.Context, input usecase.IngestBookingInput) error {
			got = input

			return domainerrors.ErrWebhookUnauthorized
		},
	}

	rec := performWebhook(t, uc, uuid.NewString(), "whsec_wrong", `{"event":`)

	assert.Equal(t, `{"event":`, string(got.Body))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestWebhookHandler_ErrorContract(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"unknown tenant", domainerrors.ErrIntegrationNotConnected, http.StatusNotFound, `{"error":"Integration not connected"}`},
		{"bad secret", domainerrors.ErrWebhookUnauthorized, http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"missing fields", domainerrors.ErrWebhookMissingData, http.StatusBadRequest, `{"error":"Missing data"}`},
		{"invalid fields", domainerrors.ErrWebhookInvalidData, http.StatusBadRequest, `{"error":"Invalid data"}`},
		{"storage failure", assert.AnError, http.StatusInternalServerError, `{"error":"Internal error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockWebhookUsecase{
				ingestFn: func(_ context.Context, _ usecase.IngestBookingInput) error {
					return tt.err
				},
			}

			rec := performWebhook(t, uc, uuid.NewString(), "whsec_secret", `{"event":"booking_created"}`)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWebhookHandler_MissingSecretHeaderPassesEmptySecret(t *testing.T) {
	var presented string
	uc := &mockWebhookUsecase{
		ingestFn: func(_ context.Context, input usecase.IngestBookingInput) error {
			presented = input.PresentedSecret

			return domainerrors.ErrWebhookUnauthorized
		},
	}

	rec := performWebhook(t, uc, uuid.NewString(), "", `{"event":"booking_created"}`)

	assert.Empty(t, presented)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
