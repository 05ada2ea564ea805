package impl

import (
	"context"
	"log/slog"
	"time"

	"freshware/internal/domain/entity"
	"freshware/internal/domain/repository"
	"freshware/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const upcomingMeetingsWindow = 7 * 24 * time.Hour

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	accountRepo repository.AccountRepository
	oppRepo     repository.OpportunityRepository
	taskRepo    repository.TaskRepository
	meetingRepo repository.MeetingRepository
	logger      *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	OppRepo     repository.OpportunityRepository
	TaskRepo    repository.TaskRepository
	MeetingRepo repository.MeetingRepository
	Logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		accountRepo: params.AccountRepo,
		oppRepo:     params.OppRepo,
		taskRepo:    params.TaskRepo,
		meetingRepo: params.MeetingRepo,
		logger:      params.Logger,
	}
}

// GetKPIs assembles the executive dashboard from aggregate queries. Each
// aggregate is one query; nothing here iterates over rows.
func (srv *dashboardService) GetKPIs(ctx context.Context) (*usecase.DashboardKPIs, error) {
	accountsByStatus, err := srv.accountRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count accounts")
	}

	pipeline, err := srv.oppRepo.PipelineSummary(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pipeline")
	}

	var openCents, wonCents int64
	for _, stage := range pipeline {
		switch {
		case stage.Stage == entity.StageWon:
			wonCents += stage.AmountCents
		case stage.Stage.Open():
			openCents += stage.AmountCents
		}
	}

	tasksByStatus, err := srv.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count tasks")
	}

	now := time.Now()
	upcoming, err := srv.meetingRepo.CountScheduledBetween(ctx, now, now.Add(upcomingMeetingsWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to count upcoming meetings")
	}

	return &usecase.DashboardKPIs{
		AccountsByStatus:      accountsByStatus,
		Pipeline:              pipeline,
		OpenPipelineCents:     openCents,
		WonCents:              wonCents,
		TasksByStatus:         tasksByStatus,
		MeetingsNextSevenDays: upcoming,
	}, nil
}
