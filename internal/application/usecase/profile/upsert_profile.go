package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"devconnect/adapters/event"
	"devconnect/internal/domain/profile"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type UpsertProfileUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpsertProfileUseCase(repo profile.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *UpsertProfileUseCase {
	return &UpsertProfileUseCase{
		profileRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

// UpsertProfileInput mirrors one submission. Nil pointers mean "field not
// supplied": the stored value survives. Status and Skills must always be
// supplied.
type UpsertProfileInput struct {
	UserID         uuid.UUID
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         profile.Social
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

var tracer = otel.Tracer("profile_usecase")

func (uc *UpsertProfileUseCase) Execute(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "UpsertProfile")
	defer span.End()

	var violations []apperror.FieldViolation
	if strings.TrimSpace(input.Status) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "status", Message: "Status is required"})
	}
	skills := profile.NormalizeSkills(input.Skills)
	if len(skills) == 0 {
		violations = append(violations, apperror.FieldViolation{Field: "skills", Message: "Skills is required"})
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	fields := profile.UpsertFields{
		Status:         strings.TrimSpace(input.Status),
		Skills:         skills,
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Social:         input.Social,
	}

	p, err := uc.profileRepo.Upsert(ctx, input.UserID, fields)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	go func() {
		err := uc.kafkaClient.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  event.ProfileEventTypeUpserted,
			OwnerID:    input.UserID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish profile upserted event", zap.String("owner_id", input.UserID.String()), zap.Error(err))
		}
	}()

	return &UpsertProfileOutput{Profile: p}, nil
}
