package auth

import (
	"context"

	"github.com/google/uuid"

	"devconnect/internal/domain/user"
)

type CurrentUserUseCase struct {
	userRepo user.Repository
}

func NewCurrentUserUseCase(repo user.Repository) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: repo}
}

type CurrentUserInput struct {
	UserID uuid.UUID
}

type CurrentUserOutput struct {
	User *user.User
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, input CurrentUserInput) (*CurrentUserOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &CurrentUserOutput{User: u}, nil
}
