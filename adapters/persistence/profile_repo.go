package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"devconnect/internal/domain/profile"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileSelect = `
	SELECT p.owner_id, p.status, p.company, p.website, p.location, p.bio,
	       p.github_username, p.skills, p.social, p.experience, p.education,
	       p.updated_at, u.name, u.avatar
	FROM profiles p
	JOIN users u ON u.id = p.owner_id
`

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var skillsBytes, socialBytes, experienceBytes, educationBytes []byte

	err := row.Scan(
		&p.OwnerID,
		&p.Status,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Bio,
		&p.GithubUsername,
		&skillsBytes,
		&socialBytes,
		&experienceBytes,
		&educationBytes,
		&p.UpdatedAt,
		&p.OwnerName,
		&p.OwnerAvatar,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal skills", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Skills = []string{}
	}
	if err := json.Unmarshal(socialBytes, &p.Social); err != nil {
		r.logger.Warn("Failed to unmarshal social", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Social = profile.Social{}
	}
	if err := json.Unmarshal(experienceBytes, &p.Experience); err != nil {
		r.logger.Warn("Failed to unmarshal experience", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Experience = []profile.Experience{}
	}
	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal education", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}

	return p, nil
}

func (r *postgresProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	row := r.db.QueryRow(ctx, profileSelect+` WHERE p.owner_id = $1`, ownerID)
	p, err := r.scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	rows, err := r.db.Query(ctx, profileSelect+` ORDER BY p.updated_at DESC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to list profiles", err)
	}
	defer rows.Close()

	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan profile row", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("failed to iterate profiles", err)
	}
	return profiles, nil
}

// Upsert makes the create-vs-update decision inside one INSERT ... ON
// CONFLICT statement, so two racing submissions for the same owner can
// never produce two rows. Only supplied columns appear in the update SET
// list, which is what gives partial-overwrite semantics; the social
// sub-document is merged key-wise with the jsonb || operator.
func (r *postgresProfileRepo) Upsert(ctx context.Context, ownerID uuid.UUID, fields profile.UpsertFields) (*profile.Profile, error) {
	skillsJSON, err := json.Marshal(fields.Skills)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal skills", err)
	}
	socialJSON, err := json.Marshal(fields.Social)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal social", err)
	}

	cols := []string{"owner_id", "status", "skills", "social", "experience", "education", "updated_at"}
	vals := []interface{}{ownerID, fields.Status, skillsJSON, socialJSON, []byte("[]"), []byte("[]"), time.Now().UTC()}
	set := []string{
		"status = EXCLUDED.status",
		"skills = EXCLUDED.skills",
		"social = profiles.social || EXCLUDED.social",
		"updated_at = EXCLUDED.updated_at",
	}

	optional := []struct {
		col string
		val *string
	}{
		{"company", fields.Company},
		{"website", fields.Website},
		{"location", fields.Location},
		{"bio", fields.Bio},
		{"github_username", fields.GithubUsername},
	}
	for _, o := range optional {
		if o.val == nil {
			continue
		}
		cols = append(cols, o.col)
		vals = append(vals, *o.val)
		set = append(set, o.col+" = EXCLUDED."+o.col)
	}

	query, args, err := psql.Insert("profiles").
		Columns(cols...).
		Values(vals...).
		Suffix("ON CONFLICT (owner_id) DO UPDATE SET " + strings.Join(set, ", ")).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build upsert query", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return nil, apperror.NewInternal("failed to upsert profile", err)
	}

	return r.GetByOwnerID(ctx, ownerID)
}

// Mutate runs fn over the aggregate under a row lock. Concurrent
// mutations for the same owner serialize on SELECT ... FOR UPDATE, so a
// read-modify-write never overwrites another one; different owners do not
// contend.
func (r *postgresProfileRepo) Mutate(ctx context.Context, ownerID uuid.UUID, fn func(*profile.Profile) error) (*profile.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, profileSelect+` WHERE p.owner_id = $1 FOR UPDATE OF p`, ownerID)
	p, err := r.scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to lock profile", err)
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	experienceJSON, err := json.Marshal(p.Experience)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal experience", err)
	}
	educationJSON, err := json.Marshal(p.Education)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal education", err)
	}

	p.UpdatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `
		UPDATE profiles
		SET experience = $2, education = $3, updated_at = $4
		WHERE owner_id = $1
	`, ownerID, experienceJSON, educationJSON, p.UpdatedAt)
	if err != nil {
		return nil, apperror.NewInternal("failed to persist profile mutation", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit profile mutation", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Delete(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE owner_id = $1`, ownerID); err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	return nil
}
