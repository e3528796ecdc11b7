package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const runColumns = `run_id, title, intake, company, items, gate, created_at, updated_at`

func (s *PostgresStore) CreateRun(ctx context.Context, run *Run) error {
	intakeJSON, _ := json.Marshal(run.Intake)
	companyJSON, _ := json.Marshal(run.Company)
	itemsJSON, _ := json.Marshal(run.Items)
	gateJSON, _ := json.Marshal(run.Gate)

	return s.pool.QueryRow(ctx, `
		INSERT INTO proposal_runs (title, intake, company, items, gate)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING run_id, created_at, updated_at`,
		run.Title, intakeJSON, companyJSON, itemsJSON, gateJSON,
	).Scan(&run.ID, &run.CreatedAt, &run.UpdatedAt)
}

func (s *PostgresStore) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+runColumns+` FROM proposal_runs WHERE run_id = $1`, id)
	run, err := scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]*Run, error) {
	query := `SELECT ` + runColumns + ` FROM proposal_runs`
	args := []interface{}{}
	if filter.GateStatus != nil {
		query += ` WHERE gate->>'status' = $1`
		args = append(args, string(*filter.GateStatus))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET %d`, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *PostgresStore) UpdateRun(ctx context.Context, run *Run) error {
	intakeJSON, _ := json.Marshal(run.Intake)
	companyJSON, _ := json.Marshal(run.Company)
	itemsJSON, _ := json.Marshal(run.Items)
	gateJSON, _ := json.Marshal(run.Gate)

	return s.pool.QueryRow(ctx, `
		UPDATE proposal_runs
		SET title = $2, intake = $3, company = $4, items = $5, gate = $6, updated_at = now()
		WHERE run_id = $1
		RETURNING updated_at`,
		run.ID, run.Title, intakeJSON, companyJSON, itemsJSON, gateJSON,
	).Scan(&run.UpdatedAt)
}

func (s *PostgresStore) DeleteRun(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM proposal_runs WHERE run_id = $1`, id)
	return err
}

func (s *PostgresStore) GetStats(ctx context.Context) (*RunStats, error) {
	stats := &RunStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT count(*),
			coalesce(sum(jsonb_array_length(items)), 0),
			count(*) FILTER (WHERE gate->>'status' = 'GATE NOT RUN'),
			count(*) FILTER (WHERE gate->>'status' = 'PASS'),
			count(*) FILTER (WHERE gate->>'status' = 'AT RISK')
		FROM proposal_runs`,
	).Scan(&stats.TotalRuns, &stats.TotalItems, &stats.GateNotRun, &stats.GatePassed, &stats.GateAtRisk)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func scanRun(row pgx.Row) (*Run, error) {
	var run Run
	var intakeJSON, companyJSON, itemsJSON, gateJSON []byte

	err := row.Scan(&run.ID, &run.Title, &intakeJSON, &companyJSON, &itemsJSON, &gateJSON,
		&run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(intakeJSON, &run.Intake); err != nil {
		return nil, fmt.Errorf("decode intake: %w", err)
	}
	if err := json.Unmarshal(companyJSON, &run.Company); err != nil {
		return nil, fmt.Errorf("decode company: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &run.Items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if err := json.Unmarshal(gateJSON, &run.Gate); err != nil {
		return nil, fmt.Errorf("decode gate: %w", err)
	}
	if run.Items == nil {
		run.Items = []*Item{}
	}
	if run.Gate.Status == "" {
		run.Gate.Status = GateNotRun
	}
	return &run, nil
}
