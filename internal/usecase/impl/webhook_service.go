package impl

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "freshware/internal/delivery/context"
	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// webhookService implements the WebhookUsecase interface.
type webhookService struct {
	integrationRepo repository.IntegrationRepository
	meetingRepo     repository.MeetingRepository
	logger          *slog.Logger
}

// WebhookServiceParams holds dependencies for webhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	IntegrationRepo repository.IntegrationRepository
	MeetingRepo     repository.MeetingRepository
	Logger          *slog.Logger
}

// NewWebhookService is the constructor for webhookService.
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	return &webhookService{
		integrationRepo: params.IntegrationRepo,
		meetingRepo:     params.MeetingRepo,
		logger:          params.Logger,
	}
}

func (srv *webhookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IngestBooking authenticates and applies one booking event. The order of the
// checks is part of the contract: credential lookup, secret comparison, body
// decoding, payload validation, then the idempotent upsert. An unknown tenant
// must not reach the secret check, and a bad secret must not reach decoding,
// so the response never leaks whether the payload would have been acceptable.
func (srv *webhookService) IngestBooking(ctx context.Context, input usecase.IngestBookingInput) error {
	credential, err := srv.integrationRepo.FindByAccountAndProvider(ctx, input.AccountID, entity.ProviderYouCanBookMe)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return domainerrors.ErrIntegrationNotConnected
		}

		return errors.Wrap(err, "failed to look up integration credential")
	}
	if !credential.Connected() {
		return domainerrors.ErrIntegrationNotConnected
	}

	if input.PresentedSecret == "" ||
		subtle.ConstantTimeCompare([]byte(input.PresentedSecret), []byte(credential.Secret)) != 1 {
		srv.log(ctx).Warn("Webhook rejected: bad secret", slog.Any("accountID", input.AccountID))

		return domainerrors.ErrWebhookUnauthorized
	}

	var payload usecase.BookingPayload
	if err := json.Unmarshal(input.Body, &payload); err != nil {
		return domainerrors.ErrWebhookInvalidData
	}

	meeting, err := srv.meetingFromPayload(input.AccountID, payload)
	if err != nil {
		return err
	}

	if err := srv.meetingRepo.UpsertByExternalID(ctx, meeting); err != nil {
		return errors.Wrap(err, "failed to upsert provider meeting")
	}

	srv.log(ctx).Info("Webhook booking applied",
		slog.Any("accountID", input.AccountID),
		slog.String("externalID", payload.ExternalID),
		slog.String("event", payload.Event),
		slog.String("status", string(meeting.Status)))

	return nil
}

// meetingFromPayload validates the provider payload and shapes it into a
// meeting entity. Missing required fields and unparseable timestamps map to
// distinct errors so the provider's logs point at the actual problem.
func (srv *webhookService) meetingFromPayload(accountID uuid.UUID, payload usecase.BookingPayload) (*entity.Meeting, error) {
	if payload.ExternalID == "" || payload.StartISO == "" {
		return nil, domainerrors.ErrWebhookMissingData
	}

	scheduledAt, err := time.Parse(time.RFC3339, payload.StartISO)
	if err != nil {
		return nil, domainerrors.ErrWebhookInvalidData
	}

	var endsAt *time.Time
	if payload.EndISO != "" {
		parsed, err := time.Parse(time.RFC3339, payload.EndISO)
		if err != nil {
			return nil, domainerrors.ErrWebhookInvalidData
		}
		endsAt = &parsed
	}

	var contactEmail *string
	if payload.ContactEmail != "" {
		contactEmail = &payload.ContactEmail
	}

	externalID := payload.ExternalID
	now := time.Now()

	return &entity.Meeting{
		ID:           uuid.New(),
		AccountID:    accountID,
		ContactName:  payload.ContactName,
		ContactEmail: contactEmail,
		ScheduledAt:  scheduledAt,
		EndsAt:       endsAt,
		Status:       entity.MeetingStatusFromEvent(payload.Event),
		Source:       entity.ProviderYouCanBookMe,
		ExternalID:   &externalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
