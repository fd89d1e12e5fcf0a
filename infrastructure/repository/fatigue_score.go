package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adpulse/ad-fatigue-api/infrastructure/database/postgres"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	"github.com/lib/pq"
)

const (
	fatigueScoresTable = "fatigue_scores fs"
)

type FatigueScoreRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) ([]*domain.FatigueScoreEntry, error)
	GetByAdIDAndDateRange(adID string, startDate, endDate time.Time) ([]*domain.FatigueScoreEntry, error)
	ListByStatusAndDate(statuses []domain.FatigueStatus, date time.Time) ([]*domain.FatigueScoreEntry, error)
	SaveOrUpdate(entry *domain.FatigueScoreEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type fatigueScoreRepository struct {
	conn *postgres.Connection
}

func NewFatigueScoreRepository(conn *postgres.Connection) FatigueScoreRepository {
	return &fatigueScoreRepository{
		conn: conn,
	}
}

func (r *fatigueScoreRepository) GetByAccountIDAndDate(accountID string, date time.Time) ([]*domain.FatigueScoreEntry, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.account_id, fs.ad_id, fs.date, fs.score, fs.created_at, fs.updated_at").
		From(fatigueScoresTable).
		Where(squirrel.Eq{"fs.account_id": accountID, "fs.date": date.Format(time.DateOnly)}).
		OrderBy("fs.overall_score DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *fatigueScoreRepository) GetByAdIDAndDateRange(adID string, startDate, endDate time.Time) ([]*domain.FatigueScoreEntry, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.account_id, fs.ad_id, fs.date, fs.score, fs.created_at, fs.updated_at").
		From(fatigueScoresTable).
		Where(squirrel.Eq{"fs.ad_id": adID}).
		Where(squirrel.GtOrEq{"fs.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"fs.date": endDate.Format(time.DateOnly)}).
		OrderBy("fs.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *fatigueScoreRepository) ListByStatusAndDate(statuses []domain.FatigueStatus, date time.Time) ([]*domain.FatigueScoreEntry, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.account_id, fs.ad_id, fs.date, fs.score, fs.created_at, fs.updated_at").
		From(fatigueScoresTable).
		Where(squirrel.Eq{"fs.status": statuses, "fs.date": date.Format(time.DateOnly)}).
		OrderBy("fs.overall_score DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *fatigueScoreRepository) SaveOrUpdate(entry *domain.FatigueScoreEntry) error {
	var scoreJSON []byte
	var err error

	overallScore := 0
	status := domain.FatigueStatusHealthy

	if entry.Score != nil {
		scoreJSON, err = json.Marshal(entry.Score)
		if err != nil {
			return fmt.Errorf("erro ao serializar score para JSON: %w", err)
		}
		overallScore = entry.Score.OverallScore
		status = entry.Score.Status
	}

	query := squirrel.StatementBuilder.
		Insert("fatigue_scores").
		Columns("account_id", "ad_id", "date", "overall_score", "status", "score").
		Values(
			entry.AccountID,
			entry.AdID,
			entry.Date.Format(time.DateOnly),
			overallScore,
			status,
			scoreJSON,
		).
		Suffix(`
			ON CONFLICT (ad_id, date) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				overall_score = EXCLUDED.overall_score,
				status = EXCLUDED.status,
				score = EXCLUDED.score,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *fatigueScoreRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("fatigue_scores").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *fatigueScoreRepository) queryEntries(query string, args []interface{}) ([]*domain.FatigueScoreEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.FatigueScoreEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear scores de fadiga: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *fatigueScoreRepository) scanEntry(rows *sql.Rows) (*domain.FatigueScoreEntry, error) {
	entry := &domain.FatigueScoreEntry{}
	var scoreJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.AdID,
		&entry.Date,
		&scoreJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if scoreJSON != nil {
		score := &domain.FatigueScore{}
		if err := json.Unmarshal(scoreJSON, score); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de score: %w", err)
		}
		entry.Score = score
	}

	return entry, nil
}
