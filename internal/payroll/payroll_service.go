package payroll

import (
	"context"
	"encoding/json"
	"time"

	payrollerrors "payrollpro/internal/payroll/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	StatusFilterAll = "all"

	// SummaryCacheKey holds the dashboard numbers for a short window. The
	// data changes rarely and the dashboard polls it on every admin visit.
	SummaryCacheKey = "payrolls:summary"
	summaryCacheTTL = 30 * time.Second
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, statusFilter string) ([]PayrollResponse, error)
	Summary(ctx context.Context) (*SummaryResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l}
}

func (s *service) List(ctx context.Context, statusFilter string) ([]PayrollResponse, error) {
	if statusFilter == "" {
		statusFilter = StatusFilterAll
	}

	var (
		rows []Payroll
		err  error
	)
	switch statusFilter {
	case StatusFilterAll:
		rows, err = s.repo.FindAll(ctx)
	case StatusPending, StatusApproved:
		rows, err = s.repo.FindByStatus(ctx, statusFilter)
	default:
		return nil, payrollerrors.ErrInvalidStatusFilter
	}
	if err != nil {
		return nil, err
	}

	resp := make([]PayrollResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, mapToResponse(&rows[i]))
	}
	return resp, nil
}

func (s *service) Summary(ctx context.Context) (*SummaryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SummaryCacheKey).Result(); err == nil {
			var resp SummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(SummaryCacheKey, func() (interface{}, error) {
		employeeCount, err := s.repo.CountUsers(ctx)
		if err != nil {
			return nil, err
		}

		amounts, err := s.repo.FindAllAmounts(ctx)
		if err != nil {
			return nil, err
		}
		var total int64
		for _, a := range amounts {
			total += a
		}

		pendingCount, err := s.repo.CountByStatus(ctx, StatusPending)
		if err != nil {
			return nil, err
		}

		resp := &SummaryResponse{
			EmployeeCount:    employeeCount,
			TotalAmountCents: total,
			TotalFormatted:   FormatAmount(total),
			PendingCount:     pendingCount,
		}
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, SummaryCacheKey, jsonData, summaryCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("payroll summary failed", zap.Error(err))
		return nil, err
	}
	return v.(*SummaryResponse), nil
}
