package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_1234567890abcdef"

func newWebhookServiceForTest(integrationRepo repository.IntegrationRepository, meetingRepo repository.MeetingRepository) usecase.WebhookUsecase {
	return NewWebhookService(WebhookServiceParams{
		IntegrationRepo: integrationRepo,
		MeetingRepo:     meetingRepo,
		Logger:          slog.Default(),
	})
}

func connectedCredential(accountID uuid.UUID) *entity.IntegrationCredential {
	return &entity.IntegrationCredential{
		ID:        uuid.New(),
		AccountID: accountID,
		Provider:  entity.ProviderYouCanBookMe,
		Secret:    testSecret,
		Status:    entity.IntegrationStatusConnected,
	}
}

func bookingBody(t *testing.T, payload usecase.BookingPayload) []byte {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return body
}

func validBookingPayload() usecase.BookingPayload {
	return usecase.BookingPayload{
		Event:        "booking_created",
		ExternalID:   "bk_12345",
		ContactName:  "Jamie Doe",
		ContactEmail: "jamie@example.com",
		StartISO:     "2026-09-15T14:00:00Z",
		EndISO:       "2026-09-15T14:30:00Z",
	}
}

func TestIngestBooking_UpsertsScheduledMeeting(t *testing.T) {
	accountID := uuid.New()

	var upserted *entity.Meeting
	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, gotAccountID uuid.UUID, provider string) (*entity.IntegrationCredential, error) {
				assert.Equal(t, accountID, gotAccountID)
				assert.Equal(t, entity.ProviderYouCanBookMe, provider)

				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{
			upsertByExternalIDFn: func(_ context.Context, meeting *entity.Meeting) error {
				upserted = meeting

				return nil
			},
		},
	)

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: testSecret,
		Body:            bookingBody(t, validBookingPayload()),
	})
	require.NoError(t, err)

	require.NotNil(t, upserted)
	assert.Equal(t, accountID, upserted.AccountID)
	assert.Equal(t, entity.MeetingStatusScheduled, upserted.Status)
	assert.Equal(t, entity.ProviderYouCanBookMe, upserted.Source)
	require.NotNil(t, upserted.ExternalID)
	assert.Equal(t, "bk_12345", *upserted.ExternalID)
	require.NotNil(t, upserted.ContactEmail)
	assert.Equal(t, "jamie@example.com", *upserted.ContactEmail)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC), upserted.ScheduledAt.UTC())
	require.NotNil(t, upserted.EndsAt)
}

func TestIngestBooking_CancelEventMapsToCanceled(t *testing.T) {
	accountID := uuid.New()

	var upserted *entity.Meeting
	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{
			upsertByExternalIDFn: func(_ context.Context, meeting *entity.Meeting) error {
				upserted = meeting

				return nil
			},
		},
	)

	payload := validBookingPayload()
	payload.Event = "booking_cancelled"

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: testSecret,
		Body:            bookingBody(t, payload),
	})
	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, entity.MeetingStatusCanceled, upserted.Status)
}

func TestIngestBooking_UnknownEventSchedules(t *testing.T) {
	accountID := uuid.New()

	var upserted *entity.Meeting
	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{
			upsertByExternalIDFn: func(_ context.Context, meeting *entity.Meeting) error {
				upserted = meeting

				return nil
			},
		},
	)

	payload := validBookingPayload()
	payload.Event = "booking_rescheduled"

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: testSecret,
		Body:            bookingBody(t, payload),
	})
	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, entity.MeetingStatusScheduled, upserted.Status)
}

func TestIngestBooking_NoCredentialIsNotConnected(t *testing.T) {
	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return nil, repository.ErrIntegrationNotFound
			},
		},
		&mockMeetingRepo{},
	)

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       uuid.New(),
		PresentedSecret: testSecret,
		Body:            bookingBody(t, validBookingPayload()),
	})
	assert.ErrorIs(t, err, domainerrors.ErrIntegrationNotConnected)
}

func TestIngestBooking_DisconnectedCredentialIsNotConnected(t *testing.T) {
	accountID := uuid.New()
	credential := connectedCredential(accountID)
	credential.Status = entity.IntegrationStatusDisconnected

	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return credential, nil
			},
		},
		&mockMeetingRepo{},
	)

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: testSecret,
		Body:            bookingBody(t, validBookingPayload()),
	})
	assert.ErrorIs(t, err, domainerrors.ErrIntegrationNotConnected)
}

func TestIngestBooking_BadSecretRejectedBeforeValidation(t *testing.T) {
	accountID := uuid.New()

	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{},
	)

	// The body is not even valid JSON, but the secret check must win: the
	// caller never learns whether the body would have been acceptable.
	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: "wrong-secret",
		Body:            []byte(`{"event":`),
	})
	assert.ErrorIs(t, err, domainerrors.ErrWebhookUnauthorized)
}

func TestIngestBooking_MissingSecretUnauthorized(t *testing.T) {
	accountID := uuid.New()

	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{},
	)

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID: accountID,
		Body:      bookingBody(t, validBookingPayload()),
	})
	assert.ErrorIs(t, err, domainerrors.ErrWebhookUnauthorized)
}

func TestIngestBooking_MalformedBodyInvalidAfterAuth(t *testing.T) {
	accountID := uuid.New()

	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{},
	)

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: testSecret,
		Body:            []byte(`{"event":`),
	})
	assert.ErrorIs(t, err, domainerrors.ErrWebhookInvalidData)
}

func TestIngestBooking_MissingRequiredFields(t *testing.T) {
	accountID := uuid.New()

	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{},
	)

	for name, mutate := range map[string]func(*usecase.BookingPayload){
		"no external id": func(p *usecase.BookingPayload) { p.ExternalID = "" },
		"no start time":  func(p *usecase.BookingPayload) { p.StartISO = "" },
	} {
		t.Run(name, func(t *testing.T) {
			payload := validBookingPayload()
			mutate(&payload)

			err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
				AccountID:       accountID,
				PresentedSecret: testSecret,
				Body:            bookingBody(t, payload),
			})
			assert.ErrorIs(t, err, domainerrors.ErrWebhookMissingData)
		})
	}
}

func TestIngestBooking_UnparseableTimestampInvalid(t *testing.T) {
	accountID := uuid.New()

	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{},
	)

	payload := validBookingPayload()
	payload.StartISO = "next tuesday at noon"

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: testSecret,
		Body:            bookingBody(t, payload),
	})
	assert.ErrorIs(t, err, domainerrors.ErrWebhookInvalidData)
}

func TestIngestBooking_UpsertFailureSurfacesAsInternal(t *testing.T) {
	accountID := uuid.New()

	svc := newWebhookServiceForTest(
		&mockIntegrationRepo{
			findFn: func(_ context.Context, _ uuid.UUID, _ string) (*entity.IntegrationCredential, error) {
				return connectedCredential(accountID), nil
			},
		},
		&mockMeetingRepo{
			upsertByExternalIDFn: func(_ context.Context, _ *entity.Meeting) error {
				return errors.New("connection reset")
			},
		},
	)

	err := svc.IngestBooking(context.Background(), usecase.IngestBookingInput{
		AccountID:       accountID,
		PresentedSecret: testSecret,
		Body:            bookingBody(t, validBookingPayload()),
	})
	require.Error(t, err)
	// Storage failures must not be confused with the caller-fault errors.
	assert.NotErrorIs(t, err, domainerrors.ErrWebhookUnauthorized)
	assert.NotErrorIs(t, err, domainerrors.ErrWebhookMissingData)
	assert.NotErrorIs(t, err, domainerrors.ErrWebhookInvalidData)
	assert.NotErrorIs(t, err, domainerrors.ErrIntegrationNotConnected)
}
