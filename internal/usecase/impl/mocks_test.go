package impl

import (
	"context"
	"time"

	"freshware/internal/domain/entity"
	"freshware/internal/domain/repository"

	"github.com/google/uuid"
)

// Function-field mocks: each test wires up only the calls it expects, and an
// unexpected call panics on the nil function, failing the test loudly.

type mockIntegrationRepo struct {
	findFn   func(ctx context.Context, accountID uuid.UUID, provider string) (*entity.IntegrationCredential, error)
	upsertFn func(ctx context.Context, credential *entity.IntegrationCredential) error
}

func (m *mockIntegrationRepo) FindByAccountAndProvider(ctx context.Context, accountID uuid.UUID, provider string) (*entity.IntegrationCredential, error) {
	return m.findFn(ctx, accountID, provider)
}

func (m *mockIntegrationRepo) Upsert(ctx context.Context, credential *entity.IntegrationCredential) error {
	return m.upsertFn(ctx, credential)
}

type mockMeetingRepo struct {
	repository.MeetingRepository

	upsertByExternalIDFn    func(ctx context.Context, meeting *entity.Meeting) error
	countScheduledBetweenFn func(ctx context.Context, from, to time.Time) (int64, error)
}

func (m *mockMeetingRepo) UpsertByExternalID(ctx context.Context, meeting *entity.Meeting) error {
	return m.upsertByExternalIDFn(ctx, meeting)
}

func (m *mockMeetingRepo) CountScheduledBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return m.countScheduledBetweenFn(ctx, from, to)
}

type mockUserRepo struct {
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	createFn      func(ctx context.Context, user *entity.User) error
	updateFn      func(ctx context.Context, user *entity.User) error
	listFn        func(ctx context.Context) ([]*entity.User, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.updateFn(ctx, user)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return m.listFn(ctx)
}

type mockSessionRepo struct {
	createFn            func(ctx context.Context, session *entity.Session) error
	findByTokenHashFn   func(ctx context.Context, hash string) (*entity.Session, error)
	deleteByTokenHashFn func(ctx context.Context, hash string) error
	deleteByUserIDFn    func(ctx context.Context, userID uuid.UUID) error
	countByUserIDFn     func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.createFn(ctx, session)
}

func (m *mockSessionRepo) FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	return m.findByTokenHashFn(ctx, hash)
}

func (m *mockSessionRepo) DeleteByTokenHash(ctx context.Context, hash string) error {
	return m.deleteByTokenHashFn(ctx, hash)
}

func (m *mockSessionRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.deleteByUserIDFn(ctx, userID)
}

func (m *mockSessionRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.countByUserIDFn(ctx, userID)
}

type mockAccessRequestRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.AccessRequest, error)
	createFn   func(ctx context.Context, request *entity.AccessRequest) error
	updateFn   func(ctx context.Context, request *entity.AccessRequest) error
	listFn     func(ctx context.Context, status *entity.AccessRequestStatus) ([]*entity.AccessRequest, error)
}

func (m *mockAccessRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessRequest, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockAccessRequestRepo) Create(ctx context.Context, request *entity.AccessRequest) error {
	return m.createFn(ctx, request)
}

func (m *mockAccessRequestRepo) Update(ctx context.Context, request *entity.AccessRequest) error {
	return m.updateFn(ctx, request)
}

func (m *mockAccessRequestRepo) List(ctx context.Context, status *entity.AccessRequestStatus) ([]*entity.AccessRequest, error) {
	return m.listFn(ctx, status)
}

// mockTxManager runs the unit of work without a database, handing out
// whatever repositories the test configured.
type mockTxManager struct {
	factory *mockRepoFactory
}

func (m *mockTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type mockRepoFactory struct {
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	accessRequestRepo repository.AccessRequestRepository
}

func (f *mockRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }

func (f *mockRepoFactory) SessionRepo() repository.SessionRepository { return f.sessionRepo }

func (f *mockRepoFactory) AccessRequestRepo() repository.AccessRequestRepository {
	return f.accessRequestRepo
}

type mockHasher struct {
	hashFn    func(password string) (string, error)
	compareFn func(hashedPassword, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	return m.hashFn(password)
}

func (m *mockHasher) Compare(hashedPassword, password string) error {
	return m.compareFn(hashedPassword, password)
}

type mockAccountRepo struct {
	repository.AccountRepository

	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	countByStatusFn func(ctx context.Context) (map[entity.AccountStatus]int64, error)
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockAccountRepo) CountByStatus(ctx context.Context) (map[entity.AccountStatus]int64, error) {
	return m.countByStatusFn(ctx)
}

type mockOpportunityRepo struct {
	repository.OpportunityRepository

	pipelineSummaryFn func(ctx context.Context) ([]repository.StageSummary, error)
}

func (m *mockOpportunityRepo) PipelineSummary(ctx context.Context) ([]repository.StageSummary, error) {
	return m.pipelineSummaryFn(ctx)
}

type mockTaskRepo struct {
	repository.TaskRepository

	countByStatusFn func(ctx context.Context) (map[entity.TaskStatus]int64, error)
}

func (m *mockTaskRepo) CountByStatus(ctx context.Context) (map[entity.TaskStatus]int64, error) {
	return m.countByStatusFn(ctx)
}
