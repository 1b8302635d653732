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

type AddEducationUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewAddEducationUseCase(repo profile.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *AddEducationUseCase {
	return &AddEducationUseCase{
		profileRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type AddEducationInput struct {
	UserID       uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  *string
}

type AddEducationOutput struct {
	Profile *profile.Profile
}

func (uc *AddEducationUseCase) Execute(ctx context.Context, input AddEducationInput) (*AddEducationOutput, error) {
	var violations []apperror.FieldViolation
	if strings.TrimSpace(input.School) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "school", Message: "School is required"})
	}
	if strings.TrimSpace(input.Degree) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "degree", Message: "Degree is required"})
	}
	if strings.TrimSpace(input.FieldOfStudy) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "fieldofstudy", Message: "Field of study is required"})
	}
	if input.From.IsZero() {
		violations = append(violations, apperror.FieldViolation{Field: "from", Message: "From date is required"})
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	var added profile.Education
	p, err := uc.profileRepo.Mutate(ctx, input.UserID, func(p *profile.Profile) error {
		added = p.AddEducation(profile.Education{
			School:       input.School,
			Degree:       input.Degree,
			FieldOfStudy: input.FieldOfStudy,
			From:         input.From,
			To:           input.To,
			Current:      input.Current,
			Description:  input.Description,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	go func() {
		err := uc.kafkaClient.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeEducationAdded,
			OwnerID:    input.UserID,
			RecordID:   added.ID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish education added event", zap.String("owner_id", input.UserID.String()), zap.Error(err))
		}
	}()

	return &AddEducationOutput{Profile: p}, nil
}

type RemoveEducationUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewRemoveEducationUseCase(repo profile.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *RemoveEducationUseCase {
	return &RemoveEducationUseCase{
		profileRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type RemoveEducationInput struct {
	UserID      uuid.UUID
	EducationID uuid.UUID
}

type RemoveEducationOutput struct {
	Profile *profile.Profile
}

func (uc *RemoveEducationUseCase) Execute(ctx context.Context, input RemoveEducationInput) (*RemoveEducationOutput, error) {
	p, err := uc.profileRepo.Mutate(ctx, input.UserID, func(p *profile.Profile) error {
		if err := p.RemoveEducation(input.EducationID); err != nil {
			if errors.Is(err, profile.ErrRecordNotFound) {
				return apperror.NewNotFound("education", input.EducationID.String())
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
			EventType:  event.ProfileEventTypeEducationRemoved,
			OwnerID:    input.UserID,
			RecordID:   input.EducationID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish education removed event", zap.String("owner_id", input.UserID.String()), zap.Error(err))
		}
	}()

	return &RemoveEducationOutput{Profile: p}, nil
}
