package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"devconnect/internal/domain/post"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type postgresPostRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPostRepo(db *pgxpool.Pool, log logger.Logger) post.Repository {
	return &postgresPostRepo{db: db, logger: log}
}

const postSelect = `
	SELECT id, owner_id, text, name, avatar, likes, comments, created_at, updated_at
	FROM posts
`

func (r *postgresPostRepo) scanPost(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	var likesBytes, commentsBytes []byte

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Text,
		&p.Name,
		&p.Avatar,
		&likesBytes,
		&commentsBytes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(likesBytes, &p.Likes); err != nil {
		r.logger.Warn("Failed to unmarshal likes", zap.String("post_id", p.ID.String()), zap.Error(err))
		p.Likes = []uuid.UUID{}
	}
	if err := json.Unmarshal(commentsBytes, &p.Comments); err != nil {
		r.logger.Warn("Failed to unmarshal comments", zap.String("post_id", p.ID.String()), zap.Error(err))
		p.Comments = []post.Comment{}
	}
	return p, nil
}

func (r *postgresPostRepo) Save(ctx context.Context, p *post.Post) error {
	likesJSON, err := json.Marshal(p.Likes)
	if err != nil {
		return apperror.NewInternal("failed to marshal likes", err)
	}
	commentsJSON, err := json.Marshal(p.Comments)
	if err != nil {
		return apperror.NewInternal("failed to marshal comments", err)
	}

	query := `
		INSERT INTO posts (id, owner_id, text, name, avatar, likes, comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.OwnerID, p.Text, p.Name, p.Avatar, likesJSON, commentsJSON, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert post", err)
	}
	return nil
}

func (r *postgresPostRepo) List(ctx context.Context) ([]*post.Post, error) {
	rows, err := r.db.Query(ctx, postSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to list posts", err)
	}
	defer rows.Close()

	posts := make([]*post.Post, 0)
	for rows.Next() {
		p, err := r.scanPost(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan post row", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("failed to iterate posts", err)
	}
	return posts, nil
}

func (r *postgresPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	row := r.db.QueryRow(ctx, postSelect+` WHERE id = $1`, id)
	p, err := r.scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("post", id.String())
		}
		return nil, apperror.NewInternal("failed to query post", err)
	}
	return p, nil
}

// Mutate applies fn under a row lock so concurrent likes and comments on
// one post all land.
func (r *postgresPostRepo) Mutate(ctx context.Context, id uuid.UUID, fn func(*post.Post) error) (*post.Post, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, postSelect+` WHERE id = $1 FOR UPDATE`, id)
	p, err := r.scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("post", id.String())
		}
		return nil, apperror.NewInternal("failed to lock post", err)
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	likesJSON, err := json.Marshal(p.Likes)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal likes", err)
	}
	commentsJSON, err := json.Marshal(p.Comments)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal comments", err)
	}

	p.UpdatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `
		UPDATE posts SET likes = $2, comments = $3, updated_at = $4 WHERE id = $1
	`, id, likesJSON, commentsJSON, p.UpdatedAt)
	if err != nil {
		return nil, apperror.NewInternal("failed to persist post mutation", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit post mutation", err)
	}
	return p, nil
}

func (r *postgresPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("post", id.String())
	}
	return nil
}

func (r *postgresPostRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM posts WHERE owner_id = $1`, ownerID); err != nil {
		return apperror.NewInternal("failed to delete posts by owner", err)
	}
	return nil
}
