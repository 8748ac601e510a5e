package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/mje-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/mje-dashboard/internal/domain"
)

//go:generate mockgen -source=aggregate_snapshot.go -destination=mocks/aggregate_snapshot.go -package=mocks

const (
	aggregateSnapshotsTable = "aggregate_snapshots"

	// snapshotInsertChunkSize mantém cada INSERT abaixo do limite de 65535 parâmetros do Postgres (6 por linha)
	snapshotInsertChunkSize = 1000

	createAggregateSnapshotsTable = `
		CREATE TABLE IF NOT EXISTS aggregate_snapshots (
			id          SERIAL PRIMARY KEY,
			batch_id    VARCHAR(32)  NOT NULL,
			category    VARCHAR(255) NOT NULL,
			month       SMALLINT     NOT NULL CHECK (month BETWEEN 1 AND 12),
			quantity    INTEGER      NOT NULL,
			header_text TEXT         NOT NULL DEFAULT '',
			division    VARCHAR(255) NOT NULL DEFAULT '',
			created_at  TIMESTAMP    NOT NULL DEFAULT NOW(),
			UNIQUE (batch_id, category, month)
		);
		CREATE INDEX IF NOT EXISTS idx_aggregate_snapshots_created_at ON aggregate_snapshots (created_at DESC);
	`
)

type AggregateSnapshotRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveSnapshot(ctx context.Context, batchID string, rows []domain.AggregateRow) error
	GetLatestBatch(ctx context.Context) (*domain.SnapshotBatch, error)
	ListByBatch(ctx context.Context, batchID string) ([]domain.SnapshotEntry, error)
}

type aggregateSnapshotRepository struct {
	conn postgres.Conn
}

func NewAggregateSnapshotRepository(conn postgres.Conn) AggregateSnapshotRepository {
	return &aggregateSnapshotRepository{
		conn: conn,
	}
}

func (r *aggregateSnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createAggregateSnapshotsTable); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", aggregateSnapshotsTable, err)
	}
	return nil
}

// SaveSnapshot grava todas as linhas do lote em uma única transação
func (r *aggregateSnapshotRepository) SaveSnapshot(ctx context.Context, batchID string, rows []domain.AggregateRow) error {
	if len(rows) == 0 {
		return nil
	}

	statements, err := buildSnapshotInserts(batchID, rows, snapshotInsertChunkSize)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
				var pqErr *pq.Error
				if errors.As(err, &pqErr) {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}
		return nil
	})
}

type statement struct {
	query string
	args  []any
}

// buildSnapshotInserts divide as linhas em INSERTs de no máximo chunkSize linhas
func buildSnapshotInserts(batchID string, rows []domain.AggregateRow, chunkSize int) ([]statement, error) {
	statements := make([]statement, 0, (len(rows)+chunkSize-1)/chunkSize)
	for start := 0; start < len(rows); start += chunkSize {
		end := min(start+chunkSize, len(rows))

		query, args, err := buildSnapshotInsert(batchID, rows[start:end])
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement{query: query, args: args})
	}
	return statements, nil
}

func (r *aggregateSnapshotRepository) GetLatestBatch(ctx context.Context) (*domain.SnapshotBatch, error) {
	query, args, err := buildLatestBatchQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	batch := &domain.SnapshotBatch{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&batch.BatchID, &batch.Rows, &batch.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lote: %w", err)
	}

	return batch, nil
}

func (r *aggregateSnapshotRepository) ListByBatch(ctx context.Context, batchID string) ([]domain.SnapshotEntry, error) {
	query, args, err := squirrel.
		Select("id, batch_id, category, month, quantity, header_text, division, created_at").
		From(aggregateSnapshotsTable).
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("category ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.SnapshotEntry, 0)
	for rows.Next() {
		var entry domain.SnapshotEntry
		err := rows.Scan(
			&entry.ID,
			&entry.BatchID,
			&entry.Category,
			&entry.Month,
			&entry.Quantity,
			&entry.HeaderText,
			&entry.Division,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func buildSnapshotInsert(batchID string, rows []domain.AggregateRow) (string, []any, error) {
	query := squirrel.StatementBuilder.
		Insert(aggregateSnapshotsTable).
		Columns("batch_id", "category", "month", "quantity", "header_text", "division")

	for _, row := range rows {
		query = query.Values(batchID, row.Category, int(row.Month), row.Quantity, row.HeaderText, row.Division)
	}

	return query.
		Suffix(`
			ON CONFLICT (batch_id, category, month) DO UPDATE SET
				quantity = EXCLUDED.quantity,
				header_text = EXCLUDED.header_text,
				division = EXCLUDED.division
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildLatestBatchQuery() (string, []any, error) {
	return squirrel.
		Select("batch_id, COUNT(*) AS row_count, MIN(created_at) AS created_at").
		From(aggregateSnapshotsTable).
		GroupBy("batch_id").
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
