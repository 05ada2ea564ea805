package postgres

import (
	"context"

	"freshware/internal/domain/repository"
	"freshware/internal/errors"

	"gorm.io/gorm"
)

// transactionManager implements repository.TransactionManager on top of
// gorm's Transaction helper.
type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn inside a single database transaction. Every repository
// handed out by the factory shares that transaction; an error from fn rolls
// the whole unit of work back.
func (m *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}

// repositoryFactory hands out repositories bound to one open transaction.
type repositoryFactory struct {
	tx *gorm.DB
}

func (f *repositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *repositoryFactory) SessionRepo() repository.SessionRepository {
	return NewSessionRepository(f.tx)
}

func (f *repositoryFactory) AccessRequestRepo() repository.AccessRequestRepository {
	return NewAccessRequestRepository(f.tx)
}
