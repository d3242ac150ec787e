package profile

import (
	"context"
	"errors"
	"time"

	profileerrors "payrollpro/internal/profile/errors"
	"payrollpro/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, userID string) (*ProfileResponse, error)
	Save(ctx context.Context, userID string, req SaveProfileRequest) (*ProfileResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, logger: l}
}

// Get returns the stored profile, or an empty form when the user has not
// saved one yet. A missing row is a normal state, not an error.
func (s *service) Get(ctx context.Context, userID string) (*ProfileResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, profileerrors.ErrInvalidUserID
	}

	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp := emptyResponse(userID)
			return &resp, nil
		}
		return nil, err
	}
	resp := mapToResponse(*p)
	return &resp, nil
}

func (s *service) Save(ctx context.Context, userID string, req SaveProfileRequest) (*ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, profileerrors.ErrInvalidUserID
	}

	now := time.Now()
	p := &EmployeeProfile{
		UserID:           userUUID,
		FullName:         req.FullName,
		Address:          req.Address,
		Contact:          req.Contact,
		Birthday:         req.Birthday,
		CivilStatus:      req.CivilStatus,
		SSS:              req.SSS,
		Philhealth:       req.Philhealth,
		TIN:              req.TIN,
		Pagibig:          req.Pagibig,
		EmergencyContact: req.EmergencyContact,
		UpdatedAt:        now,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	saved, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Info("profile saved",
		zap.String("user_id", userID),
	)
	resp := mapToResponse(*saved)
	return &resp, nil
}
