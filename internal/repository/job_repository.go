package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hiring-service/internal/domain"
)

// JobRepository manages job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context, offset, limit int) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id int64) error
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository builds the repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

// Create inserts the job. A zero ID lets the store assign one.
func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == 0 {
		const query = `INSERT INTO jobs (title) VALUES ($1) RETURNING id`
		return r.pool.QueryRow(ctx, query, job.Title).Scan(&job.ID)
	}
	const query = `INSERT INTO jobs (id, title) VALUES ($1,$2)`
	_, err := r.pool.Exec(ctx, query, job.ID, job.Title)
	return err
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	const query = `SELECT id, title FROM jobs WHERE id=$1`
	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, id).Scan(&job.ID, &job.Title); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	const query = `SELECT id, title FROM jobs ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.Title); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `UPDATE jobs SET title=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, job.Title, job.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM jobs WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
