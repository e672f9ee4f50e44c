package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulearn/ai-teacher-api/internal/domain/entity"
	"github.com/edulearn/ai-teacher-api/internal/domain/repository"
	"github.com/edulearn/ai-teacher-api/pkg/apperr"
)

// ChildRepository implements the ownership-scoped contract over the children
// table. Every WHERE clause pairs id with parent_id so rows of other parents
// behave exactly like missing rows.
type ChildRepository struct {
	pool *pgxpool.Pool
}

func NewChildRepository(pool *pgxpool.Pool) *ChildRepository {
	return &ChildRepository{pool: pool}
}

const childColumns = `id, parent_id, name, grade, subjects, learning_style, preferences, created_at, updated_at`

func scanChild(row pgx.Row) (*entity.Child, error) {
	c := &entity.Child{}
	err := row.Scan(&c.ID, &c.ParentID, &c.Name, &c.Grade, &c.Subjects,
		&c.LearningStyle, &c.Preferences, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if c.Preferences == nil {
		c.Preferences = map[string]any{}
	}
	return c, nil
}

func (r *ChildRepository) Create(ctx context.Context, ownerID string, in repository.ChildCreate) (*entity.Child, error) {
	prefs := in.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	c, err := scanChild(r.pool.QueryRow(ctx, `
		INSERT INTO children (parent_id, name, grade, subjects, learning_style, preferences)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+childColumns+`
	`, ownerID, in.Name, in.Grade, in.Subjects, in.LearningStyle, prefs))
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "create child profile failed", err)
	}
	return c, nil
}

func (r *ChildRepository) GetOwned(ctx context.Context, id, ownerID string) (*entity.Child, error) {
	c, err := scanChild(r.pool.QueryRow(ctx, `
		SELECT `+childColumns+`
		FROM children
		WHERE id = $1 AND parent_id = $2
	`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "child profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "get child profile failed", err)
	}
	return c, nil
}

func (r *ChildRepository) ListOwned(ctx context.Context, ownerID string, offset, limit int) ([]*entity.Child, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+childColumns+`
		FROM children
		WHERE parent_id = $1
		ORDER BY created_at
		OFFSET $2 LIMIT $3
	`, ownerID, offset, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list child profiles failed", err)
	}
	defer rows.Close()

	children := make([]*entity.Child, 0)
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "scan child profile failed", err)
		}
		children = append(children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list child profiles failed", err)
	}
	return children, nil
}

func (r *ChildRepository) Update(ctx context.Context, existing *entity.Child, in repository.ChildUpdate) (*entity.Child, error) {
	next := *existing
	if in.Name != nil {
		next.Name = *in.Name
	}
	if in.Grade != nil {
		next.Grade = *in.Grade
	}
	if in.Subjects != nil {
		next.Subjects = in.Subjects
	}
	if in.LearningStyle != nil {
		next.LearningStyle = in.LearningStyle
	}
	if in.Preferences != nil {
		next.Preferences = in.Preferences
	}

	c, err := scanChild(r.pool.QueryRow(ctx, `
		UPDATE children
		SET name = $1, grade = $2, subjects = $3, learning_style = $4, preferences = $5, updated_at = now()
		WHERE id = $6 AND parent_id = $7
		RETURNING `+childColumns+`
	`, next.Name, next.Grade, next.Subjects, next.LearningStyle, next.Preferences, existing.ID, existing.ParentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "child profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "update child profile failed", err)
	}
	return c, nil
}

func (r *ChildRepository) Delete(ctx context.Context, id, ownerID string) (*entity.Child, error) {
	c, err := scanChild(r.pool.QueryRow(ctx, `
		DELETE FROM children
		WHERE id = $1 AND parent_id = $2
		RETURNING `+childColumns+`
	`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.NotFound, "child profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "delete child profile failed", err)
	}
	return c, nil
}

var _ repository.ChildRepository = (*ChildRepository)(nil)
