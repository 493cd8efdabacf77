package service

import (
	"context"

	"go.uber.org/zap"

	"jornada-registro-api/internal/cache"
	"jornada-registro-api/internal/dto"
	"jornada-registro-api/internal/repository"
	"jornada-registro-api/internal/response"
)

// ActivityService defines the interface for schedule business logic
type ActivityService interface {
	GetActive(ctx context.Context) ([]*dto.ActivityResponse, error)
}

// activityServiceImpl is the implementation of ActivityService
type activityServiceImpl struct {
	activityRepo  repository.ActivityRepository
	activityCache cache.ActivityCache
	logger        *zap.Logger
}

// NewActivityService creates a new instance of ActivityService
func NewActivityService(activityRepo repository.ActivityRepository, activityCache cache.ActivityCache, logger *zap.Logger) ActivityService {
	return &activityServiceImpl{
		activityRepo:  activityRepo,
		activityCache: activityCache,
		logger:        logger,
	}
}

// GetActive returns the published schedule ordered by start time, serving
// from the cache when possible
func (s *activityServiceImpl) GetActive(ctx context.Context) ([]*dto.ActivityResponse, error) {
	if cached, ok := s.activityCache.GetActive(ctx); ok {
		out := make([]*dto.ActivityResponse, 0, len(cached))
		for i := range cached {
			out = append(out, dto.NewActivityResponse(&cached[i]))
		}
		return out, nil
	}

	activities, err := s.activityRepo.FindActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load activities", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Error al consultar las conferencias", err.Error())
	}

	s.activityCache.SetActive(ctx, activities)

	out := make([]*dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, dto.NewActivityResponse(&activities[i]))
	}
	return out, nil
}
