package impl

import (
	"context"
	"log/slog"
	"time"

	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) CreateContact(ctx context.Context, input usecase.CreateContactInput) (*entity.Contact, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("contact name is required")
	}

	// The parent account must exist; a contact cannot dangle.
	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to verify contact account")
	}

	now := time.Now()
	contact := &entity.Contact{
		ID:        uuid.New(),
		AccountID: input.AccountID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Title:     input.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to create contact")
	}

	return contact, nil
}

func (srv *contactService) GetContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get contact")
	}

	return contact, nil
}

func (srv *contactService) UpdateContact(ctx context.Context, input usecase.UpdateContactInput) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load contact for update")
	}

	contact.Name = input.Name
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.Title = input.Title
	contact.UpdatedAt = time.Now()

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to update contact")
	}

	return contact, nil
}

func (srv *contactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if err := srv.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete contact")
	}

	return nil
}

func (srv *contactService) ListContacts(ctx context.Context, accountID *uuid.UUID) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.List(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}
