package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	githubUC "devconnect/internal/application/usecase/github"
	"devconnect/pkg/logger"
)

type GithubHandler struct {
	listRepos *githubUC.ListReposUseCase
	logger    logger.Logger
}

func NewGithubHandler(listRepos *githubUC.ListReposUseCase, log logger.Logger) *GithubHandler {
	return &GithubHandler{
		listRepos: listRepos,
		logger:    log,
	}
}

// ListRepos relays the upstream body untouched, so the response shape is
// whatever the GitHub API returned.
func (h *GithubHandler) ListRepos(c *gin.Context) {
	output, err := h.listRepos.Execute(c.Request.Context(), githubUC.ListReposInput{
		Username: c.Param("username"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", output.Repos)
}
