package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"freshware/internal/domain/entity"
	"freshware/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKPIs_AggregatesAllSources(t *testing.T) {
	svc := NewDashboardService(DashboardServiceParams{
		AccountRepo: &mockAccountRepo{
			countByStatusFn: func(_ context.Context) (map[entity.AccountStatus]int64, error) {
				return map[entity.AccountStatus]int64{
					entity.AccountStatusProspect: 3,
					entity.AccountStatusActive:   5,
				}, nil
			},
		},
		OppRepo: &mockOpportunityRepo{
			pipelineSummaryFn: func(_ context.Context) ([]repository.StageSummary, error) {
				return []repository.StageSummary{
					{Stage: entity.StageLead, Count: 4, AmountCents: 100_000},
					{Stage: entity.StageNegotiation, Count: 2, AmountCents: 250_000},
					{Stage: entity.StageWon, Count: 1, AmountCents: 500_000},
					{Stage: entity.StageLost, Count: 3, AmountCents: 900_000},
				}, nil
			},
		},
		TaskRepo: &mockTaskRepo{
			countByStatusFn: func(_ context.Context) (map[entity.TaskStatus]int64, error) {
				return map[entity.TaskStatus]int64{entity.TaskStatusOpen: 7}, nil
			},
		},
		MeetingRepo: &mockMeetingRepo{
			countScheduledBetweenFn: func(_ context.Context, from, to time.Time) (int64, error) {
				assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), to, time.Minute)
				assert.True(t, from.Before(to))

				return 6, nil
			},
		},
		Logger: slog.Default(),
	})

	kpis, err := svc.GetKPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), kpis.AccountsByStatus[entity.AccountStatusActive])
	// Open pipeline counts only live stages; won and lost are excluded.
	assert.Equal(t, int64(350_000), kpis.OpenPipelineCents)
	assert.Equal(t, int64(500_000), kpis.WonCents)
	assert.Equal(t, int64(7), kpis.TasksByStatus[entity.TaskStatusOpen])
	assert.Equal(t, int64(6), kpis.MeetingsNextSevenDays)
	assert.Len(t, kpis.Pipeline, 4)
}
