package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the aggregate for one user's public presence: scalar
// attributes plus two embedded newest-first lists. The whole document is
// one consistency unit keyed by OwnerID.
type Profile struct {
	OwnerID        uuid.UUID    `json:"owner_id"`
	Status         string       `json:"status"`
	Company        *string      `json:"company,omitempty"`
	Website        *string      `json:"website,omitempty"`
	Location       *string      `json:"location,omitempty"`
	Bio            *string      `json:"bio,omitempty"`
	GithubUsername *string      `json:"github_username,omitempty"`
	Skills         []string     `json:"skills"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Denormalized owner attributes, filled on reads.
	OwnerName   string `json:"owner_name"`
	OwnerAvatar string `json:"owner_avatar"`
}

// Social holds the fixed platform set. Nil means the link was never set.
type Social struct {
	Youtube   *string `json:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description *string    `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  *string    `json:"description,omitempty"`
}

var ErrRecordNotFound = errors.New("record not found in profile")

// NormalizeSkills splits a comma-separated input, trims each entry and
// drops the empty ones. Order is preserved.
func NormalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// AddExperience assigns a fresh id and prepends, keeping the list
// newest-first. Returns the stored record.
func (p *Profile) AddExperience(e Experience) Experience {
	e.ID = uuid.New()
	p.Experience = append([]Experience{e}, p.Experience...)
	return e
}

// RemoveExperience removes exactly the matching entry, preserving the
// relative order of the rest. Linear scan; the embedded lists stay small.
func (p *Profile) RemoveExperience(id uuid.UUID) error {
	for i, e := range p.Experience {
		if e.ID == id {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

func (p *Profile) AddEducation(e Education) Education {
	e.ID = uuid.New()
	p.Education = append([]Education{e}, p.Education...)
	return e
}

func (p *Profile) RemoveEducation(id uuid.UUID) error {
	for i, e := range p.Education {
		if e.ID == id {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// UpsertFields carries one profile submission. Pointer fields distinguish
// "not supplied" (nil, existing value survives) from "set to empty".
// Status and Skills are required on every submission.
type UpsertFields struct {
	Status         string
	Skills         []string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         Social
}

// Repository is the aggregate store. Upsert must decide create-vs-update
// atomically for concurrent calls on one owner; Mutate must serialize
// read-modify-write sequences per document so no list update is lost.
type Repository interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, fields UpsertFields) (*Profile, error)
	Mutate(ctx context.Context, ownerID uuid.UUID, fn func(*Profile) error) (*Profile, error)
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
