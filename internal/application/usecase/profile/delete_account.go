package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/adapters/event"
	"devconnect/internal/domain/post"
	"devconnect/internal/domain/profile"
	"devconnect/internal/domain/user"
	"devconnect/pkg/apperror"
	"devconnect/pkg/auth"
	"devconnect/pkg/logger"
)

type DeleteAccountUseCase struct {
	postRepo    post.Repository
	profileRepo profile.Repository
	userRepo    user.Repository
	denylist    auth.Denylist
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDeleteAccountUseCase(
	postRepo post.Repository,
	profileRepo profile.Repository,
	userRepo user.Repository,
	denylist auth.Denylist,
	kClient *event.KafkaProducerClient,
	log logger.Logger,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		denylist:    denylist,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DeleteAccountInput struct {
	UserID uuid.UUID
}

// Execute removes the user's posts, then the profile, then the user, in
// that order so no step ever references an already-removed parent. The
// three steps are independent, not one transaction: a mid-sequence
// failure is surfaced as an error and the earlier deletions stand. The
// log records which step failed so the partial state can be reconciled.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	ctx, span := tracer.Start(ctx, "DeleteAccount")
	defer span.End()

	if err := uc.postRepo.DeleteByOwner(ctx, input.UserID); err != nil {
		uc.logger.Error("Account deletion failed at posts step", err, zap.String("user_id", input.UserID.String()))
		span.RecordError(err)
		return err
	}

	if err := uc.profileRepo.Delete(ctx, input.UserID); err != nil {
		uc.logger.Error("Account deletion failed at profile step, posts already removed", err, zap.String("user_id", input.UserID.String()))
		span.RecordError(err)
		return err
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		uc.logger.Error("Account deletion failed at user step, posts and profile already removed", err, zap.String("user_id", input.UserID.String()))
		span.RecordError(err)
		return err
	}

	// Outstanding tokens for this user must stop working now, not at
	// their natural expiry.
	if err := uc.denylist.Deny(ctx, input.UserID); err != nil {
		uc.logger.Warn("Failed to denylist deleted user", zap.String("user_id", input.UserID.String()), zap.Error(err))
	}

	go func() {
		err := uc.kafkaClient.PublishUserEvent(context.Background(), event.UserEventPayload{
			EventType:  event.UserEventTypeDeleted,
			UserID:     input.UserID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish user deleted event", zap.String("user_id", input.UserID.String()), zap.Error(err))
		}
	}()

	return nil
}
