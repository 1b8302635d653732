package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/adapters/event"
	"devconnect/internal/domain/user"
	"devconnect/pkg/apperror"
	"devconnect/pkg/auth"
	"devconnect/pkg/logger"
)

type RegisterUseCase struct {
	userRepo    user.Repository
	jwtSvc      *auth.JWTService
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, kClient *event.KafkaProducerClient, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:    repo,
		jwtSvc:      jwtSvc,
		kafkaClient: kClient,
		logger:      log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	AccessToken string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	var violations []apperror.FieldViolation
	if strings.TrimSpace(input.Name) == "" {
		violations = append(violations, apperror.FieldViolation{Field: "name", Message: "Name is required"})
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		violations = append(violations, apperror.FieldViolation{Field: "email", Message: "Please include a valid email"})
	}
	if len(input.Password) < 6 {
		violations = append(violations, apperror.FieldViolation{Field: "password", Message: "Please enter a password with 6 or more characters"})
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Avatar:       user.GravatarURL(input.Email),
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(newUser.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", newUser.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	go func() {
		err := uc.kafkaClient.PublishUserEvent(context.Background(), event.UserEventPayload{
			EventType:  event.UserEventTypeRegistered,
			UserID:     newUser.ID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Warn("Failed to publish user registered event", zap.String("user_id", newUser.ID.String()), zap.Error(err))
		}
	}()

	return &RegisterOutput{AccessToken: token}, nil
}
