package employee

import (
	"context"
	"encoding/json"
	"time"

	"payrollpro/internal/auth"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RosterCacheKey is invalidated by auth on registration so new accounts show
// up without waiting out the TTL.
const RosterCacheKey = "employees:roster"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetRoster(ctx context.Context) ([]EmployeeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l}
}

// GetRoster lists every non-admin account. Admins manage the roster and are
// not part of it.
func (s *service) GetRoster(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, RosterCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(RosterCacheKey, func() (interface{}, error) {
		records, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]EmployeeResponse, 0, len(records))
		for i := range records {
			if records[i].Role == auth.RoleAdmin {
				continue
			}
			resp = append(resp, mapToResponse(&records[i]))
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, RosterCacheKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("roster lookup failed", zap.Error(err))
		return nil, err
	}
	return v.([]EmployeeResponse), nil
}
