package profile

import (
	"context"

	"payrollpro/internal/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*EmployeeProfile, error)
	Upsert(ctx context.Context, p *EmployeeProfile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*EmployeeProfile, error) {
	var p EmployeeProfile
	err := r.db.WithContext(ctx).
		Scopes(scope.ByUser(userID)).
		First(&p).Error
	return &p, err
}

// Upsert writes the whole field set keyed by user_id. Saving twice with the
// same values keeps a single row per user.
func (r *repository) Upsert(ctx context.Context, p *EmployeeProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "address", "contact", "birthday", "civil_status",
				"sss", "philhealth", "tin", "pagibig", "emergency_contact",
				"updated_at",
			}),
		}).
		Create(p).Error
}
