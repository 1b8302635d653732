package profile

import (
	"context"

	"github.com/google/uuid"

	"devconnect/internal/domain/profile"
)

type GetOwnProfileUseCase struct {
	profileRepo profile.Repository
}

func NewGetOwnProfileUseCase(repo profile.Repository) *GetOwnProfileUseCase {
	return &GetOwnProfileUseCase{profileRepo: repo}
}

type GetOwnProfileInput struct {
	UserID uuid.UUID
}

type GetOwnProfileOutput struct {
	Profile *profile.Profile
}

func (uc *GetOwnProfileUseCase) Execute(ctx context.Context, input GetOwnProfileInput) (*GetOwnProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetOwnProfileOutput{Profile: p}, nil
}

type GetProfileByUserUseCase struct {
	profileRepo profile.Repository
}

func NewGetProfileByUserUseCase(repo profile.Repository) *GetProfileByUserUseCase {
	return &GetProfileByUserUseCase{profileRepo: repo}
}

type GetProfileByUserInput struct {
	TargetUserID uuid.UUID
}

type GetProfileByUserOutput struct {
	Profile *profile.Profile
}

func (uc *GetProfileByUserUseCase) Execute(ctx context.Context, input GetProfileByUserInput) (*GetProfileByUserOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileByUserOutput{Profile: p}, nil
}

type ListProfilesUseCase struct {
	profileRepo profile.Repository
}

func NewListProfilesUseCase(repo profile.Repository) *ListProfilesUseCase {
	return &ListProfilesUseCase{profileRepo: repo}
}

type ListProfilesOutput struct {
	Profiles []*profile.Profile
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context) (*ListProfilesOutput, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}
