package post

import (
	"context"

	"github.com/google/uuid"

	"devconnect/internal/domain/post"
)

type ListPostsUseCase struct {
	postRepo post.Repository
}

func NewListPostsUseCase(pRepo post.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: pRepo}
}

type ListPostsOutput struct {
	Posts []*post.Post
}

func (uc *ListPostsUseCase) Execute(ctx context.Context) (*ListPostsOutput, error) {
	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListPostsOutput{Posts: posts}, nil
}

type GetPostUseCase struct {
	postRepo post.Repository
}

func NewGetPostUseCase(pRepo post.Repository) *GetPostUseCase {
	return &GetPostUseCase{postRepo: pRepo}
}

type GetPostInput struct {
	PostID uuid.UUID
}

type GetPostOutput struct {
	Post *post.Post
}

func (uc *GetPostUseCase) Execute(ctx context.Context, input GetPostInput) (*GetPostOutput, error) {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	return &GetPostOutput{Post: p}, nil
}
