package post

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/adapters/event"
	"devconnect/internal/domain/post"
	"devconnect/internal/domain/user"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type CreatePostUseCase struct {
	postRepo    post.Repository
	userRepo    user.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewCreatePostUseCase(pRepo post.Repository, uRepo user.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:    pRepo,
		userRepo:    uRepo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type CreatePostInput struct {
	OwnerID uuid.UUID
	Text    string
}

type CreatePostOutput struct {
	Post *post.Post
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*CreatePostOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, apperror.NewValidation([]apperror.FieldViolation{
			{Field: "text", Message: "Text is required"},
		})
	}

	author, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newPost := &post.Post{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		Text:      input.Text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []uuid.UUID{},
		Comments:  []post.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.postRepo.Save(ctx, newPost); err != nil {
		return nil, err
	}

	go func() {
		err := uc.kafkaClient.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType:  event.PostEventTypeCreated,
			PostID:     newPost.ID,
			OwnerID:    input.OwnerID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish post created event", zap.String("post_id", newPost.ID.String()), zap.Error(err))
		}
	}()

	return &CreatePostOutput{Post: newPost}, nil
}
