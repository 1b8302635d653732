package post

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"devconnect/internal/domain/post"
	"devconnect/pkg/apperror"
)

type LikePostUseCase struct {
	postRepo post.Repository
}

func NewLikePostUseCase(pRepo post.Repository) *LikePostUseCase {
	return &LikePostUseCase{postRepo: pRepo}
}

type LikePostInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

type LikePostOutput struct {
	Post *post.Post
}

func (uc *LikePostUseCase) Execute(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {
	p, err := uc.postRepo.Mutate(ctx, input.PostID, func(p *post.Post) error {
		if err := p.Like(input.UserID); err != nil {
			if errors.Is(err, post.ErrAlreadyLiked) {
				return apperror.NewInvalidInput("post already liked", err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &LikePostOutput{Post: p}, nil
}

type UnlikePostUseCase struct {
	postRepo post.Repository
}

func NewUnlikePostUseCase(pRepo post.Repository) *UnlikePostUseCase {
	return &UnlikePostUseCase{postRepo: pRepo}
}

func (uc *UnlikePostUseCase) Execute(ctx context.Context, input LikePostInput) (*LikePostOutput, error) {
	p, err := uc.postRepo.Mutate(ctx, input.PostID, func(p *post.Post) error {
		if err := p.Unlike(input.UserID); err != nil {
			if errors.Is(err, post.ErrNotLiked) {
				return apperror.NewInvalidInput("post has not yet been liked", err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &LikePostOutput{Post: p}, nil
}
