package timelog

import (
	"context"
	"database/sql"
	"testing"
	"time"

	timelogerrors "payrollpro/internal/timelog/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn          func(ctx context.Context, t *TimeLog) error
	updateFn          func(ctx context.Context, t *TimeLog) error
	findOpenFn        func(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error)
	findLatestFn      func(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error)
	findAllInWindowFn func(ctx context.Context, userID string, start, end time.Time) ([]TimeLog, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                 { return f }
func (f *fakeRepo) Create(ctx context.Context, t *TimeLog) error { return f.createFn(ctx, t) }
func (f *fakeRepo) Update(ctx context.Context, t *TimeLog) error { return f.updateFn(ctx, t) }
func (f *fakeRepo) FindOpenInWindow(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
	return f.findOpenFn(ctx, userID, start, end)
}
func (f *fakeRepo) FindLatestInWindow(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
	return f.findLatestFn(ctx, userID, start, end)
}
func (f *fakeRepo) FindAllInWindow(ctx context.Context, userID string, start, end time.Time) ([]TimeLog, error) {
	return f.findAllInWindowFn(ctx, userID, start, end)
}

func TestService_ClockInThenClockOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New().String()
	ctx := context.Background()

	var saved *TimeLog
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, row *TimeLog) error { saved = row; return nil }
	repo.updateFn = func(ctx context.Context, row *TimeLog) error { saved = row; return nil }
	repo.findOpenFn = func(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
		if saved == nil || saved.TimeOut != nil {
			return nil, gorm.ErrRecordNotFound
		}
		return saved, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.ClockIn(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, inResp.ID)
	assert.Nil(t, inResp.TimeOut)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.ClockOut(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, inResp.ID, outResp.ID)
	assert.NotNil(t, outResp.TimeOut)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_AlreadyOpen(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	userID := uuid.New()
	ctx := context.Background()

	repo := &fakeRepo{}
	repo.findOpenFn = func(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
		return &TimeLog{ID: uuid.New(), TimeIn: time.Now()}, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(ctx, userID.String())
	assert.ErrorIs(t, err, timelogerrors.ErrAlreadyClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockOut_NotClockedIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findOpenFn = func(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, timelogerrors.ErrNotClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_InvalidUserID(t *testing.T) {
	svc := NewService(nil, &fakeRepo{})

	_, err := svc.ClockIn(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, timelogerrors.ErrInvalidUserID)
}

func TestService_Today(t *testing.T) {
	userID := uuid.New()

	t.Run("no log yet", func(t *testing.T) {
		repo := &fakeRepo{}
		repo.findLatestFn = func(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := NewService(nil, repo)
		resp, err := svc.Today(context.Background(), userID.String())
		assert.NoError(t, err)
		assert.Equal(t, StatusNotWorking, resp.Status)
		assert.Nil(t, resp.TimeLog)
	})

	t.Run("open log means working", func(t *testing.T) {
		repo := &fakeRepo{}
		repo.findLatestFn = func(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
			return &TimeLog{ID: uuid.New(), UserID: uuid.MustParse(userID), TimeIn: time.Now()}, nil
		}

		svc := NewService(nil, repo)
		resp, err := svc.Today(context.Background(), userID.String())
		assert.NoError(t, err)
		assert.Equal(t, StatusWorking, resp.Status)
		assert.NotNil(t, resp.TimeLog)
	})

	t.Run("closed log means not working", func(t *testing.T) {
		out := time.Now()
		repo := &fakeRepo{}
		repo.findLatestFn = func(ctx context.Context, userID string, start, end time.Time) (*TimeLog, error) {
			return &TimeLog{ID: uuid.New(), UserID: uuid.MustParse(userID), TimeIn: out.Add(-8 * time.Hour), TimeOut: &out}, nil
		}

		svc := NewService(nil, repo)
		resp, err := svc.Today(context.Background(), userID.String())
		assert.NoError(t, err)
		assert.Equal(t, StatusNotWorking, resp.Status)
		assert.NotNil(t, resp.TimeLog)
	})
}

func TestService_ListByMonth(t *testing.T) {
	userID := uuid.New()

	repo := &fakeRepo{}
	repo.findAllInWindowFn = func(ctx context.Context, userID string, start, end time.Time) ([]TimeLog, error) {
		return []TimeLog{
			{ID: uuid.New(), TimeIn: time.Now()},
			{ID: uuid.New(), TimeIn: time.Now().Add(-24 * time.Hour)},
		}, nil
	}

	svc := NewService(nil, repo)

	resp, err := svc.ListByMonth(context.Background(), userID.String(), "")
	assert.NoError(t, err)
	assert.Len(t, resp, 2)

	_, err = svc.ListByMonth(context.Background(), userID.String(), "2026-13")
	assert.ErrorIs(t, err, timelogerrors.ErrInvalidMonth)
}
