package activity

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("workout not found")
	ErrNonFinite = errors.New("workout summary is not finite")
)

const schema = `
CREATE TABLE IF NOT EXISTS workouts (
    id TEXT PRIMARY KEY,
    code TEXT,
    readings BLOB,
    training_type TEXT,
    duration REAL,
    distance REAL,
    speed REAL,
    calories REAL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`

// Stored is a summarised workout as persisted.
type Stored struct {
	ID       string      `json:"id"`
	Code     string      `json:"type"`
	Readings []float64   `json:"data"`
	Info     InfoMessage `json:"info"`
	Message  string      `json:"message"`
	Created  time.Time   `json:"created_at"`
}

type Service struct {
	db      *sql.DB
	logger  *slog.Logger
	metrics *Metrics
}

func NewService(db *sql.DB, logger *slog.Logger, metrics *Metrics) *Service {
	return &Service{
		db:      db,
		logger:  logger,
		metrics: metrics,
	}
}

// Migrate creates the workouts table if needed.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error creating table: %w", err)
	}
	return nil
}

// Summarise reads a sensor package and computes its summary without storing it.
func (a *Service) Summarise(code string, data []float64) (InfoMessage, error) {
	w, err := ReadPackage(code, data)
	if err != nil {
		var unsupported *UnsupportedWorkoutError
		var count *CountError
		switch {
		case errors.As(err, &unsupported):
			a.metrics.observeRejected("unsupported")
		case errors.As(err, &count):
			a.metrics.observeRejected("count")
		default:
			a.metrics.observeRejected("arity")
		}
		return InfoMessage{}, err
	}

	info := ShowTrainingInfo(w)
	a.metrics.observeComputed(info.TrainingType)
	return info, nil
}

func (a *Service) Add(ctx context.Context, code string, data []float64) (Stored, error) {
	info, err := a.Summarise(code, data)
	if err != nil {
		return Stored{}, err
	}

	if !info.finite() {
		a.metrics.observeRejected("non_finite")
		return Stored{}, fmt.Errorf("%s %v: %w", code, data, ErrNonFinite)
	}

	var buffer bytes.Buffer
	enc := gob.NewEncoder(&buffer)
	if err := enc.Encode(data); err != nil {
		return Stored{}, err
	}

	id := uuid.NewString()
	res, err := a.db.ExecContext(ctx, `
    INSERT INTO workouts
    (id,
    code,
    readings,
    training_type,
    duration,
    distance,
    speed,
    calories)
    VALUES
    (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		code,
		buffer.Bytes(),
		info.TrainingType,
		info.Duration,
		info.Distance,
		info.Speed,
		info.Calories,
	)
	if err != nil {
		return Stored{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Stored{}, err
	}

	if affected != 1 {
		return Stored{}, fmt.Errorf("expected 1 row to be affected, got %d", affected)
	}

	a.logger.Debug("Stored workout", slog.String("id", id), slog.String("training_type", info.TrainingType))

	return a.Get(ctx, id)
}

func (a *Service) Get(ctx context.Context, id string) (Stored, error) {
	row := a.db.QueryRowContext(ctx, selectWorkouts+" WHERE id = ?", id)
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Stored{}, ErrNotFound
	}
	return w, err
}

// List returns all stored workouts, oldest first.
func (a *Service) List(ctx context.Context) ([]Stored, error) {
	rows, err := a.db.QueryContext(ctx, selectWorkouts+" ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []Stored{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

const selectWorkouts = "SELECT id, code, readings, training_type, duration, distance, speed, calories, created_at FROM workouts"

type scanner interface {
	Scan(dest ...any) error
}

func scanWorkout(s scanner) (Stored, error) {
	var w Stored
	var readingsVal []byte
	if err := s.Scan(&w.ID, &w.Code, &readingsVal, &w.Info.TrainingType, &w.Info.Duration, &w.Info.Distance, &w.Info.Speed, &w.Info.Calories, &w.Created); err != nil {
		return Stored{}, err
	}

	dec := gob.NewDecoder(bytes.NewBuffer(readingsVal))
	if err := dec.Decode(&w.Readings); err != nil {
		return Stored{}, err
	}

	w.Message = w.Info.Message()
	return w, nil
}
