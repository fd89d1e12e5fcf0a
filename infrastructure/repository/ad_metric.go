package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adpulse/ad-fatigue-api/infrastructure/database/postgres"
	"github.com/adpulse/ad-fatigue-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	adMetricsTable = "ad_metrics am"
)

type AdMetricRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) ([]*domain.AdMetricEntry, error)
	GetByAdIDAndDateRange(adID string, startDate, endDate time.Time) ([]*domain.AdMetricEntry, error)
	SaveOrUpdate(entry *domain.AdMetricEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type adMetricRepository struct {
	conn *postgres.Connection
}

func NewAdMetricRepository(conn *postgres.Connection) AdMetricRepository {
	return &adMetricRepository{
		conn: conn,
	}
}

func (r *adMetricRepository) GetByAccountIDAndDate(accountID string, date time.Time) ([]*domain.AdMetricEntry, error) {
	query, args, err := squirrel.
		Select("am.id, am.account_id, am.ad_id, am.date, am.metrics, am.created_at, am.updated_at").
		From(adMetricsTable).
		Where(squirrel.Eq{"am.account_id": accountID, "am.date": date.Format(time.DateOnly)}).
		OrderBy("am.ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *adMetricRepository) GetByAdIDAndDateRange(adID string, startDate, endDate time.Time) ([]*domain.AdMetricEntry, error) {
	query, args, err := squirrel.
		Select("am.id, am.account_id, am.ad_id, am.date, am.metrics, am.created_at, am.updated_at").
		From(adMetricsTable).
		Where(squirrel.Eq{"am.ad_id": adID}).
		Where(squirrel.GtOrEq{"am.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"am.date": endDate.Format(time.DateOnly)}).
		OrderBy("am.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *adMetricRepository) queryEntries(query string, args []interface{}) ([]*domain.AdMetricEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AdMetricEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas de anúncio: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *adMetricRepository) SaveOrUpdate(entry *domain.AdMetricEntry) error {
	var metricsJSON []byte
	var err error

	if entry.Metrics != nil {
		metricsJSON, err = json.Marshal(entry.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("ad_metrics").
		Columns("account_id", "ad_id", "date", "metrics").
		Values(
			entry.AccountID,
			entry.AdID,
			entry.Date.Format(time.DateOnly),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (ad_id, date) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				metrics = EXCLUDED.metrics,
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

func (r *adMetricRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("ad_metrics").
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

func (r *adMetricRepository) scanEntry(rows *sql.Rows) (*domain.AdMetricEntry, error) {
	entry := &domain.AdMetricEntry{}
	var metricsJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.AdID,
		&entry.Date,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		metrics := &domain.RawAdMetricRecord{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		entry.Metrics = metrics
	}

	return entry, nil
}
