package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var ErrNotFound = errors.New("resume not found")

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

// GetByID loads a resume row with its content blob eagerly decoded.
func (r *ResumesRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResumeRecord, error) {
	var rec domain.ResumeRecord
	var contentB []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, title, content, created_at, updated_at FROM resumes WHERE id = $1`,
		id).Scan(&rec.ID, &rec.OwnerID, &rec.Title, &contentB, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(contentB) > 0 {
		if err := json.Unmarshal(contentB, &rec.Content); err != nil {
			return nil, fmt.Errorf("decode resume content: %w", err)
		}
	}
	if rec.Content == nil {
		rec.Content = map[string]interface{}{}
	}
	return &rec, nil
}

// ListByOwner returns all resumes for an owner, newest first, without the
// content blobs.
func (r *ResumesRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ResumeRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_id, title, created_at, updated_at FROM resumes WHERE owner_id = $1 ORDER BY updated_at DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ResumeRecord
	for rows.Next() {
		var rec domain.ResumeRecord
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Save upserts a resume row. Content marshals to JSONB.
func (r *ResumesRepo) Save(ctx context.Context, rec *domain.ResumeRecord) error {
	contentB, err := json.Marshal(rec.Content)
	if err != nil {
		return fmt.Errorf("encode resume content: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, owner_id, title, content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.OwnerID, rec.Title, contentB, rec.CreatedAt, rec.UpdatedAt)
	return err
}

// Delete removes a resume owned by the given owner.
func (r *ResumesRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetExportSettings returns the owner's last-used export settings, or
// ErrNotFound when they have never exported.
func (r *ResumesRepo) GetExportSettings(ctx context.Context, ownerID uuid.UUID) (*domain.ExportSettings, error) {
	var b []byte
	err := r.pool.QueryRow(ctx,
		`SELECT settings FROM export_settings WHERE owner_id = $1`, ownerID).Scan(&b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var s domain.ExportSettings
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode export settings: %w", err)
	}
	return &s, nil
}

// SaveExportSettings upserts the owner's last-used settings.
func (r *ResumesRepo) SaveExportSettings(ctx context.Context, ownerID uuid.UUID, s domain.ExportSettings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO export_settings (owner_id, settings, updated_at)
		VALUES ($1,$2,now())
		ON CONFLICT (owner_id) DO UPDATE SET settings = EXCLUDED.settings, updated_at = now()`,
		ownerID, b)
	return err
}
