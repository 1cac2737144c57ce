package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hiring-service/internal/domain"
	"github.com/spec-kit/hiring-service/internal/repository"
	apperrors "github.com/spec-kit/hiring-service/pkg/util/errorutil"
)

// JobPatch carries the fields of a merge-patch update.
type JobPatch struct {
	Title *string
}

// JobService owns job CRUD and its error wrapping.
type JobService struct {
	jobs repository.JobRepository
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// Create persists a new job. A zero id is assigned by the store.
func (s *JobService) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error creating job %d", job.ID), err)
	}
	return job, nil
}

// GetByID fetches a job by id.
func (s *JobService) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": id})
		}
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error fetching job %d", id), err)
	}
	return job, nil
}

// List returns a page of jobs in id order.
func (s *JobService) List(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	offset, limit = normalizePage(offset, limit)
	jobs, err := s.jobs.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.NewOperationFailed("error listing jobs", err)
	}
	return jobs, nil
}

// Update applies a merge patch over the stored row.
func (s *JobService) Update(ctx context.Context, id int64, patch JobPatch) (*domain.Job, error) {
	job, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", map[string]any{"id": id})
		}
		return nil, apperrors.NewOperationFailed(fmt.Sprintf("error updating job %d", id), err)
	}
	return job, nil
}

// Delete removes the job with the given id.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("job", map[string]any{"id": id})
		}
		return apperrors.NewOperationFailed(fmt.Sprintf("error deleting job %d", id), err)
	}
	return nil
}
