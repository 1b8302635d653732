package post

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/adapters/event"
	"devconnect/internal/domain/post"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type DeletePostUseCase struct {
	postRepo    post.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeletePostUseCase(pRepo post.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo:    pRepo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DeletePostInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {
	p, err := uc.postRepo.FindByID(ctx, input.PostID)
	if err != nil {
		return err
	}

	if p.OwnerID != input.UserID {
		return apperror.NewPermissionDenied("only the author can delete a post")
	}

	if err := uc.postRepo.Delete(ctx, input.PostID); err != nil {
		return err
	}

	go func() {
		err := uc.kafkaClient.PublishPostEvent(context.Background(), event.PostEventPayload{
			EventType:  event.PostEventTypeDeleted,
			PostID:     input.PostID,
			OwnerID:    input.UserID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish post deleted event", zap.String("post_id", input.PostID.String()), zap.Error(err))
		}
	}()

	return nil
}
