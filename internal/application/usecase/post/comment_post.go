package post

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"devconnect/internal/domain/post"
	"devconnect/internal/domain/user"
	"devconnect/pkg/apperror"
)

type AddCommentUseCase struct {
	postRepo post.Repository
	userRepo user.Repository
}

func NewAddCommentUseCase(pRepo post.Repository, uRepo user.Repository) *AddCommentUseCase {
	return &AddCommentUseCase{postRepo: pRepo, userRepo: uRepo}
}

type AddCommentInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
	Text   string
}

type AddCommentOutput struct {
	Post *post.Post
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, input AddCommentInput) (*AddCommentOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "text", Message: "Text is required"},
		})
	}

	author, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	p, err := uc.postRepo.Mutate(ctx, input.PostID, func(p *post.Post) error {
		p.AddComment(post.Comment{
			UserID: input.UserID,
			Text:   input.Text,
			Name:   author.Name,
			Avatar: author.Avatar,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AddCommentOutput{Post: p}, nil
}

type RemoveCommentUseCase struct {
	postRepo post.Repository
}

func NewRemoveCommentUseCase(pRepo post.Repository) *RemoveCommentUseCase {
	return &RemoveCommentUseCase{postRepo: pRepo}
}

type RemoveCommentInput struct {
	PostID    uuid.UUID
	CommentID uuid.UUID
	UserID    uuid.UUID
}

type RemoveCommentOutput struct {
	Post *post.Post
}

func (uc *RemoveCommentUseCase) Execute(ctx context.Context, input RemoveCommentInput) (*RemoveCommentOutput, error) {
	p, err := uc.postRepo.Mutate(ctx, input.PostID, func(p *post.Post) error {
		removed, err := p.RemoveComment(input.CommentID)
		if err != nil {
			if errors.Is(err, post.ErrCommentNotFound) {
				return apperror.NewNotFound("comment", input.CommentID.String())
			}
			return err
		}
		if removed.UserID != input.UserID {
			return apperror.NewPermissionDenied("only the author can remove a comment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RemoveCommentOutput{Post: p}, nil
}
