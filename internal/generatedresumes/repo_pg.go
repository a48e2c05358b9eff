package generatedresumes

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a generated resume record.
func (r *PGRepo) Create(ctx context.Context, resume GeneratedResume) error {
	if err := resume.validate(); err != nil {
		return err
	}
	const query = `
INSERT INTO generated_resumes (
    id, file_name, storage_key, candidate_name, template_id, provider, renderer, mime_type, size_bytes, pages, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.FileName,
		resume.StorageKey,
		resume.CandidateName,
		resume.TemplateID,
		resume.Provider,
		resume.Renderer,
		resume.MimeType,
		resume.SizeBytes,
		resume.Pages,
		resume.CreatedAt,
	)
	return err
}

// List lists generated resume records ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]GeneratedResume, error) {
	limit, offset = ClampPage(limit, offset)
	const query = `
SELECT id, file_name, storage_key, candidate_name, template_id, provider, renderer, mime_type, size_bytes, pages, created_at
FROM generated_resumes
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GeneratedResume{}
	for rows.Next() {
		var resume GeneratedResume
		if err := rows.Scan(
			&resume.ID,
			&resume.FileName,
			&resume.StorageKey,
			&resume.CandidateName,
			&resume.TemplateID,
			&resume.Provider,
			&resume.Renderer,
			&resume.MimeType,
			&resume.SizeBytes,
			&resume.Pages,
			&resume.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
