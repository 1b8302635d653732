package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is one feed entry. Author name/avatar are denormalized at creation
// so the feed renders without a join per row. Likes hold one entry per
// user; comments are embedded newest-first.
type Post struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	Text      string      `json:"text"`
	Name      string      `json:"name"`
	Avatar    string      `json:"avatar"`
	Likes     []uuid.UUID `json:"likes"`
	Comments  []Comment   `json:"comments"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post has not yet been liked")
	ErrCommentNotFound = errors.New("comment not found")
)

func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

func (p *Post) Like(userID uuid.UUID) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = append(p.Likes, userID)
	return nil
}

func (p *Post) Unlike(userID uuid.UUID) error {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return ErrNotLiked
}

func (p *Post) AddComment(c Comment) Comment {
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()
	p.Comments = append([]Comment{c}, p.Comments...)
	return c
}

func (p *Post) RemoveComment(commentID uuid.UUID) (*Comment, error) {
	for i, c := range p.Comments {
		if c.ID == commentID {
			removed := c
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return &removed, nil
		}
	}
	return nil, ErrCommentNotFound
}

type Repository interface {
	Save(ctx context.Context, p *Post) error
	List(ctx context.Context) ([]*Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	Mutate(ctx context.Context, id uuid.UUID, fn func(*Post) error) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
