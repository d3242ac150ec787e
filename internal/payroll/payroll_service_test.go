package payroll

import (
	"context"
	"testing"

	payrollerrors "payrollpro/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	findAllFn       func(ctx context.Context) ([]Payroll, error)
	findByStatusFn  func(ctx context.Context, status string) ([]Payroll, error)
	findAmountsFn   func(ctx context.Context) ([]int64, error)
	countByStatusFn func(ctx context.Context, status string) (int64, error)
	countUsersFn    func(ctx context.Context) (int64, error)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Payroll, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByStatus(ctx context.Context, status string) ([]Payroll, error) {
	return f.findByStatusFn(ctx, status)
}
func (f *fakeRepo) FindAllAmounts(ctx context.Context) ([]int64, error) { return f.findAmountsFn(ctx) }
func (f *fakeRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return f.countByStatusFn(ctx, status)
}
func (f *fakeRepo) CountUsers(ctx context.Context) (int64, error) { return f.countUsersFn(ctx) }

func TestService_List(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Payroll, error) {
			return []Payroll{
				{ID: uuid.New().String(), AmountCents: 1500000, Status: StatusApproved},
				{ID: uuid.New().String(), AmountCents: 980050, Status: StatusPending},
			}, nil
		},
		findByStatusFn: func(ctx context.Context, status string) ([]Payroll, error) {
			assert.Equal(t, StatusPending, status)
			return []Payroll{{ID: uuid.New().String(), AmountCents: 980050, Status: StatusPending}}, nil
		},
	}
	svc := NewService(repo, nil)

	all, err := svc.List(context.Background(), "all")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "15,000.00", all[0].AmountFormatted)
	assert.Equal(t, "Approved", all[0].StatusLabel)

	// Empty filter defaults to all.
	all, err = svc.List(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := svc.List(context.Background(), StatusPending)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "Pending", pending[0].StatusLabel)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.List(context.Background(), "archived")
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusFilter)
}

func TestService_Summary(t *testing.T) {
	repo := &fakeRepo{
		countUsersFn: func(ctx context.Context) (int64, error) { return 12, nil },
		findAmountsFn: func(ctx context.Context) ([]int64, error) {
			return []int64{1500000, 980050, 250}, nil
		},
		countByStatusFn: func(ctx context.Context, status string) (int64, error) {
			assert.Equal(t, StatusPending, status)
			return 2, nil
		},
	}
	svc := NewService(repo, nil)

	resp, err := svc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), resp.EmployeeCount)
	assert.Equal(t, int64(2480300), resp.TotalAmountCents)
	assert.Equal(t, "24,803.00", resp.TotalFormatted)
	assert.Equal(t, int64(2), resp.PendingCount)
}
