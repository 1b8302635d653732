package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/adapters/event"
	"devconnect/internal/domain/profile"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type AddExperienceUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewAddExperienceUseCase(repo profile.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *AddExperienceUseCase {
	return &AddExperienceUseCase{
		profileRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type AddExperienceInput struct {
	UserID      uuid.UUID
	Title       string
	Company     string
	Location    *string
	From        time.Time
	To          *time.Time
	Current     bool
	Description *string
}

type AddExperienceOutput struct {
	Profile *profile.Profile
}

func (uc *AddExperienceUseCase) Execute(ctx context.Context, input AddExperienceInput) (*AddExperienceOutput, error) {
	var violations []apperror.FieldViolation
	if strings.TrimSpace(input.Title) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "title", Message: "Title is required"})
	}
	if strings.TrimSpace(input.Company) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "company", Message: "Company is required"})
	}
	if input.From.IsZero() {
		violations = append(violations, apperror.FieldViolation{Field: "from", Message: "From date is required"})
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	var added profile.Experience
	p, err := uc.profileRepo.Mutate(ctx, input.UserID, func(p *profile.Profile) error {
		added = p.AddExperience(profile.Experience{
			Title:       input.Title,
			Company:     input.Company,
			Location:    input.Location,
			From:        input.From,
			To:          input.To,
			Current:     input.Current,
			Description: input.Description,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(input.UserID, added.ID, event.ProfileEventTypeExperienceAdded)
	return &AddExperienceOutput{Profile: p}, nil
}

func (uc *AddExperienceUseCase) publish(ownerID, recordID uuid.UUID, eventType string) {
	go func() {
		err := uc.kafkaClient.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  eventType,
			OwnerID:    ownerID,
			RecordID:   recordID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish profile event", zap.String("owner_id", ownerID.String()), zap.Error(err))
		}
	}()
}

type RemoveExperienceUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewRemoveExperienceUseCase(repo profile.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *RemoveExperienceUseCase {
	return &RemoveExperienceUseCase{
		profileRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type RemoveExperienceInput struct {
	UserID       uuid.UUID
	ExperienceID uuid.UUID
}

type RemoveExperienceOutput struct {
	Profile *profile.Profile
}

func (uc *RemoveExperienceUseCase) Execute(ctx context.Context, input RemoveExperienceInput) (*RemoveExperienceOutput, error) {
	p, err := uc.profileRepo.Mutate(ctx, input.UserID, func(p *profile.Profile) error {
		if err := p.RemoveExperience(input.ExperienceID); err != nil {
			if errors.Is(err, profile.ErrRecordNotFound) {
				return apperror.NewNotFound("experience", input.ExperienceID.String())
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go func() {
		err := uc.kafkaClient.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeExperienceRemoved,
			OwnerID:    input.UserID,
			RecordID:   input.ExperienceID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish experience removed event", zap.String("owner_id", input.UserID.String()), zap.Error(err))
		}
	}()

	return &RemoveExperienceOutput{Profile: p}, nil
}
