package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jornada-registro-api/internal/cache"
	"jornada-registro-api/internal/metrics"
	"jornada-registro-api/internal/repository"
)

// StatsJob refreshes the business gauges and warms the schedule cache. It
// runs on a cron schedule and implements cron.Job via Run.
type StatsJob struct {
	participantRepo repository.ParticipantRepository
	teamRepo        repository.TeamRepository
	activityRepo    repository.ActivityRepository
	activityCache   cache.ActivityCache
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(
	participantRepo repository.ParticipantRepository,
	teamRepo repository.TeamRepository,
	activityRepo repository.ActivityRepository,
	activityCache cache.ActivityCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) *StatsJob {
	return &StatsJob{
		participantRepo: participantRepo,
		teamRepo:        teamRepo,
		activityRepo:    activityRepo,
		activityCache:   activityCache,
		metrics:         m,
		logger:          logger,
	}
}

// Run executes one stats collection pass
func (j *StatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	participantCount, err := j.participantRepo.Count(ctx)
	if err != nil {
		j.logger.Error("Failed to count participants", zap.Error(err))
	} else {
		j.metrics.SetParticipantsTotal(participantCount)
	}

	teamCount, err := j.teamRepo.CountActive(ctx)
	if err != nil {
		j.logger.Error("Failed to count teams", zap.Error(err))
	} else {
		j.metrics.SetTeamsTotal(teamCount)
	}

	// Warm the schedule cache so the first visitor after a TTL expiry does
	// not pay for the database round trip
	activities, err := j.activityRepo.FindActive(ctx)
	if err != nil {
		j.logger.Error("Failed to warm activity cache", zap.Error(err))
		return
	}
	j.activityCache.SetActive(ctx, activities)

	j.logger.Debug("Stats job completed",
		zap.Int64("participants", participantCount),
		zap.Int64("teams", teamCount),
		zap.Int("activities", len(activities)),
	)
}
