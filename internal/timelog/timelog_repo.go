package timelog

import (
	"context"
	"database/sql"
	"time"

	"payrollpro/internal/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timelog_repo.go -destination=mock/timelog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *TimeLog) error
	Update(ctx context.Context, t *TimeLog) error

	// FindOpenInWindow returns the newest log in [start, end] whose time_out
	// is still null.
	FindOpenInWindow(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error)

	// FindLatestInWindow returns the newest log in [start, end], open or not.
	FindLatestInWindow(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error)

	FindAllInWindow(ctx context.Context, userID string, start, end time.Time) ([]TimeLog, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, t *TimeLog) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *TimeLog) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) FindOpenInWindow(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
	var t TimeLog
	err := r.db.WithContext(ctx).
		Scopes(scope.ByUser(userID)).
		Where("time_in BETWEEN ? AND ?", start, end).
		Where("time_out IS NULL").
		Order("time_in DESC").
		First(&t).Error
	return &t, err
}

func (r *repository) FindLatestInWindow(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
	var t TimeLog
	err := r.db.WithContext(ctx).
		Scopes(scope.ByUser(userID)).
		Where("time_in BETWEEN ? AND ?", start, end).
		Order("time_in DESC").
		First(&t).Error
	return &t, err
}

func (r *repository) FindAllInWindow(ctx context.Context, userID string, start, end time.Time) ([]TimeLog, error) {
	var rows []TimeLog
	err := r.db.WithContext(ctx).
		Scopes(scope.ByUser(userID)).
		Where("time_in BETWEEN ? AND ?", start, end).
		Order("time_in DESC").
		Find(&rows).Error
	return rows, err
}
