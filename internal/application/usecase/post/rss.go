package post

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"devconnect/internal/domain/post"
	"devconnect/pkg/logger"
)

type RSSFeedUseCase struct {
	postRepo post.Repository
	baseURL  string
	logger   logger.Logger
}

func NewRSSFeedUseCase(pRepo post.Repository, baseURL string, log logger.Logger) *RSSFeedUseCase {
	return &RSSFeedUseCase{
		postRepo: pRepo,
		baseURL:  baseURL,
		logger:   log,
	}
}

const rssItemLimit = 20

func (uc *RSSFeedUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	feed := &feeds.Feed{
		Title:       "DevConnect - Latest Posts",
		Link:        &feeds.Link{Href: uc.baseURL + "/api/posts"},
		Description: "What developers on DevConnect are talking about.",
		Created:     time.Now(),
	}

	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list posts for RSS", err)
		return nil, err
	}
	if len(posts) > rssItemLimit {
		posts = posts[:rssItemLimit]
	}

	var feedItems []*feeds.Item
	for _, p := range posts {
		feedItems = append(feedItems, &feeds.Item{
			Title:       fmt.Sprintf("%s on DevConnect", p.Name),
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/api/posts/%s", uc.baseURL, p.ID)},
			Description: p.Text,
			Author:      &feeds.Author{Name: p.Name},
			Created:     p.CreatedAt,
		})
	}

	feed.Items = feedItems
	uc.logger.Info("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
