// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"
	"freshware/internal/domain/repository"
)

// DashboardKPIs aggregates the company-wide numbers shown on the
// executive dashboard.
type DashboardKPIs struct {
	AccountsByStatus      map[entity.AccountStatus]int64
	Pipeline              []repository.StageSummary
	OpenPipelineCents     int64 // Total value of deals not yet won or lost.
	WonCents              int64 // Total value of won deals.
	TasksByStatus         map[entity.TaskStatus]int64
	MeetingsNextSevenDays int64
}

// DashboardUsecase defines the interface for the KPI dashboard.
type DashboardUsecase interface {
	GetKPIs(ctx context.Context) (*DashboardKPIs, error)
}
