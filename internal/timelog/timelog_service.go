package timelog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"payrollpro/internal/events"
	"payrollpro/internal/messaging/kafka"
	"payrollpro/internal/shared/contextutil"
	timelogerrors "payrollpro/internal/timelog/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timelog_service.go -destination=mock/timelog_service_mock.go -package=mock
type Service interface {
	// Today reports the newest log inside today's local midnight window and
	// whether the user is currently clocked in.
	Today(ctx context.Context, userID string) (TodayResponse, error)

	ClockIn(ctx context.Context, userID string) (TimeLogResponse, error)
	ClockOut(ctx context.Context, userID string) (TimeLogResponse, error)

	// ListByMonth returns the user's logs for the month cursor, newest first.
	ListByMonth(ctx context.Context, userID, month string) ([]TimeLogResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Today(ctx context.Context, userID string) (TodayResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return TodayResponse{}, timelogerrors.ErrInvalidUserID
	}

	start, end := dayRange(time.Now())
	row, err := s.repo.FindLatestInWindow(ctx, userID, start, end)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TodayResponse{Status: StatusNotWorking}, nil
		}
		return TodayResponse{}, err
	}

	resp := mapToResponse(*row)
	status := StatusNotWorking
	if row.TimeOut == nil {
		status = StatusWorking
	}
	return TodayResponse{Status: status, TimeLog: &resp}, nil
}

func (s *service) ClockIn(ctx context.Context, userID string) (TimeLogResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TimeLogResponse{}, timelogerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimeLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now()
	start, end := dayRange(now)

	existing, err := qtx.FindOpenInWindow(ctx, userID, start, end)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return TimeLogResponse{}, err
	}
	if err == nil && existing != nil {
		return TimeLogResponse{}, timelogerrors.ErrAlreadyClockedIn
	}

	row := &TimeLog{
		ID:     uuid.New(),
		UserID: userUUID,
		TimeIn: now,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return TimeLogResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, events.TimeLogClockedIn, row); err != nil {
		return TimeLogResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TimeLogResponse{}, err
	}

	s.logger.Info("clock in recorded",
		zap.String("user_id", userID),
		zap.String("time_log_id", row.ID.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, userID string) (TimeLogResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return TimeLogResponse{}, timelogerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimeLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := time.Now()
	start, end := dayRange(now)

	row, err := qtx.FindOpenInWindow(ctx, userID, start, end)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimeLogResponse{}, timelogerrors.ErrNotClockedIn
		}
		return TimeLogResponse{}, err
	}

	row.TimeOut = &now

	if err := qtx.Update(ctx, row); err != nil {
		return TimeLogResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, events.TimeLogClockedOut, row); err != nil {
		return TimeLogResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TimeLogResponse{}, err
	}

	s.logger.Info("clock out recorded",
		zap.String("user_id", userID),
		zap.String("time_log_id", row.ID.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) ListByMonth(ctx context.Context, userID, month string) ([]TimeLogResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, timelogerrors.ErrInvalidUserID
	}

	cursor, err := ParseMonth(month, time.Now())
	if err != nil {
		return nil, err
	}

	start, end := MonthRange(cursor)
	rows, err := s.repo.FindAllInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, eventType string, row *TimeLog) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.TimeLogClockedEvent{
		EventType:  eventType,
		RequestID:  rid,
		TimeLogID:  row.ID.String(),
		UserID:     row.UserID.String(),
		TimeIn:     row.TimeIn.UTC(),
		OccurredAt: time.Now().UTC(),
	}
	if row.TimeOut != nil {
		v := row.TimeOut.UTC()
		event.TimeOut = &v
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "time_log",
		AggregateID:   row.ID.String(),
		EventType:     eventType,
		Topic:         events.TimeLogEventsTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
