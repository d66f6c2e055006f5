package repo

import (
	"context"
	"database/sql"
	"time"

	fatigue "Woehler/internal/calc/fatigue"
)

type AnalysisRecord struct {
	ID        int            `json:"id"`
	Input     fatigue.Input  `json:"input"`
	Result    fatigue.Result `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetUser(ctx context.Context, id int) (login, email string, err error)
	SaveAnalysis(ctx context.Context, userID int, in fatigue.Input, res fatigue.Result) (int, error)
	ListAnalyses(ctx context.Context, userID, limit int) ([]AnalysisRecord, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (string, string, error) {
	var login, email string
	query := "SELECT login, email FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&login, &email)
	if err != nil {
		return "", "", err
	}
	return login, email, nil
}

func (r *PostgresRepository) SaveAnalysis(ctx context.Context, userID int, in fatigue.Input, res fatigue.Result) (int, error) {
	var id int
	query := `INSERT INTO analyses
		(user_id, material, stress_amplitude, mean_stress, cycles, safety_factor,
		 cycles_to_failure, safety_margin, is_safe)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		userID, in.Material, in.StressAmplitudeMPa, in.MeanStressMPa, in.Cycles, in.SafetyFactor,
		res.CyclesToFailure, res.SafetyMargin, res.IsSafe).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListAnalyses(ctx context.Context, userID, limit int) ([]AnalysisRecord, error) {
	query := `SELECT id, material, stress_amplitude, mean_stress, cycles, safety_factor,
		cycles_to_failure, safety_margin, is_safe, created_at
		FROM analyses WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		err := rows.Scan(&rec.ID,
			&rec.Input.Material, &rec.Input.StressAmplitudeMPa, &rec.Input.MeanStressMPa,
			&rec.Input.Cycles, &rec.Input.SafetyFactor,
			&rec.Result.CyclesToFailure, &rec.Result.SafetyMargin, &rec.Result.IsSafe,
			&rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		rec.Result.AnalysisMethod = fatigue.AnalysisMethod
		records = append(records, rec)
	}
	return records, rows.Err()
}
