package payroll

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Payroll, error)
	FindByStatus(ctx context.Context, status string) ([]Payroll, error)
	FindAllAmounts(ctx context.Context) ([]int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Payroll, error) {
	var rows []Payroll
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]Payroll, error) {
	var rows []Payroll
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllAmounts(ctx context.Context) ([]int64, error) {
	var amounts []int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Pluck("amount_cents", &amounts).Error
	return amounts, err
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

// CountUsers backs the dashboard's employee headcount. It counts every live
// account, admins included, matching the dashboard's historical figure.
func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("deleted_at IS NULL").
		Count(&n).Error
	return n, err
}
