package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"cadastro-api/internal/domain"
)

// PageSize es la cantidad fija de registros por página de List.
const PageSize = 20

// RecordFilter lleva los filtros opcionales de List. Un campo vacío equivale
// a un filtro que acepta cualquier valor.
type RecordFilter struct {
	ID        string
	Recipient string
	Sender    string
	Note      string
}

type RecordRepository interface {
	List(ctx context.Context, filter RecordFilter, page int) ([]domain.Record, error)
	Create(ctx context.Context, sender, recipient string, note *string) (int64, error)
	Update(ctx context.Context, id int64, sender, recipient string, note *string) (int64, error)
}

type PgRecordRepository struct {
	pool *pgxpool.Pool
}

func NewPgRecordRepository(pool *pgxpool.Pool) *PgRecordRepository {
	return &PgRecordRepository{pool: pool}
}

// El filtro por id busca substring sobre el texto del id (id=12 matchea 112).
// COALESCE mantiene el contrato de filtro vacío: NULL LIKE '%' no es true,
// pero una nota ausente sí debe matchear el filtro vacío.
const listQuery = `
	SELECT id, created_at, sender, recipient, note
	FROM records
	WHERE CAST(id AS TEXT) LIKE $1
	  AND recipient LIKE $2
	  AND sender LIKE $3
	  AND COALESCE(note, '') LIKE $4
	ORDER BY created_at DESC
	LIMIT $5
	OFFSET $6
`

// listArgs traduce filtros y página a los parámetros posicionales de
// listQuery. Cada filtro se envuelve en %...%; vacío queda %% y acepta todo.
func listArgs(filter RecordFilter, page int) []any {
	if page < 1 {
		page = 1
	}
	return []any{
		"%" + filter.ID + "%",
		"%" + filter.Recipient + "%",
		"%" + filter.Sender + "%",
		"%" + filter.Note + "%",
		PageSize,
		(page - 1) * PageSize,
	}
}

func (r *PgRecordRepository) List(ctx context.Context, filter RecordFilter, page int) ([]domain.Record, error) {
	rows, err := r.pool.Query(ctx, listQuery, listArgs(filter, page)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		err = rows.Scan(
			&rec.ID,
			&rec.Timestamp,
			&rec.Sender,
			&rec.Recipient,
			&rec.Note,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *PgRecordRepository) Create(ctx context.Context, sender, recipient string, note *string) (int64, error) {
	const query = `
		INSERT INTO records (sender, recipient, note)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.pool.QueryRow(ctx, query, sender, recipient, note).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PgRecordRepository) Update(ctx context.Context, id int64, sender, recipient string, note *string) (int64, error) {
	const query = `
		UPDATE records
		SET sender = $1, recipient = $2, note = $3
		WHERE id = $4
	`

	tag, err := r.pool.Exec(ctx, query, sender, recipient, note, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
