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

// projectService implements the ProjectUsecase interface.
type projectService struct {
	projectRepo repository.ProjectRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: params.ProjectRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *projectService) CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("project name is required")
	}

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to verify project account")
	}

	now := time.Now()
	project := &entity.Project{
		ID:        uuid.New(),
		AccountID: input.AccountID,
		Name:      input.Name,
		Status:    entity.ProjectStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	return project, nil
}

func (srv *projectService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get project")
	}

	return project, nil
}

func (srv *projectService) UpdateProject(ctx context.Context, input usecase.UpdateProjectInput) (*entity.Project, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown project status")
	}

	project, err := srv.projectRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load project for update")
	}

	project.Name = input.Name
	project.Status = input.Status
	project.UpdatedAt = time.Now()

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to update project")
	}

	return project, nil
}

func (srv *projectService) ListProjects(ctx context.Context, accountID *uuid.UUID) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.List(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}
