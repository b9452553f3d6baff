package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// ErrForbidden is returned when a document exists but belongs to another
// account. The HTTP layer maps it to 403, which the API client reacts to by
// falling back to create.
var ErrForbidden = errors.New("repository: resume owned by another user")

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

// Create stores the document under a fresh server-assigned id. The id inside
// the document is rewritten so the client adopts it.
func (r *ResumesRepo) Create(ctx context.Context, userEmail string, doc model.Resume) (*domain.StoredResume, error) {
	id := uuid.New()
	now := time.Now()
	doc.ID = id.String()
	doc = doc.Normalize()

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, user_email, title, document, ats_score, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		id, userEmail, domain.ResumeTitle(doc), b, doc.ATSScore, now, now)
	if err != nil {
		return nil, err
	}
	return &domain.StoredResume{ID: id, UserEmail: userEmail, Title: domain.ResumeTitle(doc), Document: doc, CreatedAt: now, UpdatedAt: now}, nil
}

// Update replaces the stored document, enforcing ownership.
func (r *ResumesRepo) Update(ctx context.Context, id uuid.UUID, userEmail string, doc model.Resume) (*domain.StoredResume, error) {
	var owner string
	err := r.pool.QueryRow(ctx, `SELECT user_email FROM resumes WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if owner != userEmail {
		return nil, ErrForbidden
	}

	now := time.Now()
	doc.ID = id.String()
	doc = doc.Normalize()
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	_, err = r.pool.Exec(ctx, `UPDATE resumes
		SET title = $2, document = $3, ats_score = $4, updated_at = $5
		WHERE id = $1`,
		id, domain.ResumeTitle(doc), b, doc.ATSScore, now)
	if err != nil {
		return nil, err
	}
	return &domain.StoredResume{ID: id, UserEmail: userEmail, Title: domain.ResumeTitle(doc), Document: doc, UpdatedAt: now}, nil
}

func (r *ResumesRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoredResume, error) {
	var (
		out domain.StoredResume
		raw []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, user_email, title, document, created_at, updated_at
		FROM resumes WHERE id = $1`, id).
		Scan(&out.ID, &out.UserEmail, &out.Title, &raw, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &out.Document); err != nil {
		return nil, err
	}
	out.Document = out.Document.Normalize()
	return &out, nil
}

// ListByOwner returns the user's documents, most recently updated first.
func (r *ResumesRepo) ListByOwner(ctx context.Context, userEmail string) ([]model.Resume, error) {
	rows, err := r.pool.Query(ctx, `SELECT document FROM resumes
		WHERE user_email = $1 ORDER BY updated_at DESC`, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Resume{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var doc model.Resume
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out = append(out, doc.Normalize())
	}
	return out, rows.Err()
}

func (r *ResumesRepo) Delete(ctx context.Context, id uuid.UUID, userEmail string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_email = $2`, id, userEmail)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
