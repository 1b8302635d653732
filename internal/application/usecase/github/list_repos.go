package github

import (
	"context"
	"encoding/json"
)

// RepoLister is the consumed interface of the upstream repository-hosting
// API; adapters/github provides the real one.
type RepoLister interface {
	ListRepos(ctx context.Context, username string) (json.RawMessage, error)
}

type ListReposUseCase struct {
	client RepoLister
}

func NewListReposUseCase(client RepoLister) *ListReposUseCase {
	return &ListReposUseCase{client: client}
}

type ListReposInput struct {
	Username string
}

type ListReposOutput struct {
	Repos json.RawMessage
}

func (uc *ListReposUseCase) Execute(ctx context.Context, input ListReposInput) (*ListReposOutput, error) {
	repos, err := uc.client.ListRepos(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	return &ListReposOutput{Repos: repos}, nil
}
