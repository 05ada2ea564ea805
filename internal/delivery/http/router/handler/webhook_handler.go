package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "freshware/internal/delivery/context"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderWebhookSecret is the header the scheduling provider sends the
// per-tenant shared secret in.
const HeaderWebhookSecret = "X-YCBM-Secret"

// WebhookHandler receives the scheduling provider's booking callbacks.
//
// The response body follows the provider's expected contract of {"ok":true}
// on success and {"error":"..."} on failure, not the portal's API envelope,
// so this handler writes its responses directly instead of delegating to the
// shared error handler.
type WebhookHandler struct {
	uc     usecase.WebhookUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.WebhookUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, logger: logger}
}

type webhookOKResponse struct {
	OK bool `json:"ok"`
}

type webhookErrorResponse struct {
	Error string `json:"error"`
}

// IngestBooking handles POST /webhooks/youcanbookme/:accountID.
func (h *WebhookHandler) IngestBooking(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountID"))
	if err != nil {
		// An unparseable tenant ID is indistinguishable from an unknown one.
		return c.JSON(http.StatusNotFound, webhookErrorResponse{Error: domainerrors.ErrIntegrationNotConnected.Message()})
	}

	// The body is handed over raw. Decoding happens inside the usecase only
	// after the secret check passes, so an unauthenticated caller gets the
	// same 401 whether or not its payload would parse.
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return h.writeError(c, errors.Wrap(err, "failed to read webhook body"))
	}

	err = h.uc.IngestBooking(c.Request().Context(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: c.Request().Header.Get(HeaderWebhookSecret),
		Body:            body,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, webhookOKResponse{OK: true})
}

func (h *WebhookHandler) writeError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.HTTPCode(), webhookErrorResponse{Error: appErr.Message()})
	}

	// Unexpected failure: log the cause, answer 500 so the provider retries.
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	logger.Error("Webhook ingestion failed", slog.Any("error", err))

	return c.JSON(http.StatusInternalServerError, webhookErrorResponse{Error: "Internal error"})
}
