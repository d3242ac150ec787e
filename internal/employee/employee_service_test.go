package employee_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"payrollpro/internal/auth"
	"payrollpro/internal/employee"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	findAllFn func(ctx context.Context) ([]employee.EmployeeRecord, error)
	calls     int
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]employee.EmployeeRecord, error) {
	f.calls++
	return f.findAllFn(ctx)
}

func TestService_GetRoster_FiltersAdmins(t *testing.T) {
	employeeID := uuid.New().String()
	adminID := uuid.New().String()

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]employee.EmployeeRecord, error) {
			return []employee.EmployeeRecord{
				{ID: employeeID, Email: "jane@acme.test", Role: auth.RoleEmployee},
				{ID: adminID, Email: "boss@acme.test", Role: auth.RoleAdmin},
			}, nil
		},
	}

	svc := employee.NewService(repo, nil)

	roster, err := svc.GetRoster(context.Background())
	assert.NoError(t, err)
	assert.Len(t, roster, 1)
	assert.Equal(t, employeeID, roster[0].ID)
	assert.Equal(t, "jane@acme.test", roster[0].Email)
}

func TestService_GetRoster_CacheHitSkipsRepo(t *testing.T) {
	cached := []employee.EmployeeResponse{{ID: uuid.New().String(), Email: "jane@acme.test"}}
	payload, _ := json.Marshal(cached)

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(employee.RosterCacheKey).SetVal(string(payload))

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]employee.EmployeeRecord, error) {
			t.Fatal("repo should not be hit on a cache hit")
			return nil, nil
		},
	}

	svc := employee.NewService(repo, rdb)

	roster, err := svc.GetRoster(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, roster)
	assert.Zero(t, repo.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetRoster_CacheMissFillsCache(t *testing.T) {
	record := employee.EmployeeRecord{ID: uuid.New().String(), Email: "jane@acme.test", Role: auth.RoleEmployee}
	expected := []employee.EmployeeResponse{{ID: record.ID, Email: record.Email}}
	payload, _ := json.Marshal(expected)

	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(employee.RosterCacheKey).RedisNil()
	redisMock.ExpectSet(employee.RosterCacheKey, payload, 1*time.Hour).SetVal("OK")

	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]employee.EmployeeRecord, error) {
			return []employee.EmployeeRecord{record}, nil
		},
	}

	svc := employee.NewService(repo, rdb)

	roster, err := svc.GetRoster(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, roster)
	assert.Equal(t, 1, repo.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
