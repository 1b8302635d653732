package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/domain/profile"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

func strPtr(s string) *string { return &s }

func TestUpsertProfile_ValidationCollectsAllViolations(t *testing.T) {
	uc := NewUpsertProfileUseCase(newFakeProfileRepo(), nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpsertProfileInput{
		UserID: uuid.New(),
		Status: "  ",
		Skills: " , ,",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, errors.Is(appErr, apperror.ErrInvalidInput))
	require.Len(t, appErr.Violations, 2)
	assert.Equal(t, "status", appErr.Violations[0].Field)
	assert.Equal(t, "skills", appErr.Violations[1].Field)
}

func TestUpsertProfile_CreatesThenPartiallyOverwrites(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewUpsertProfileUseCase(repo, nil, logger.NewNop())
	ownerID := uuid.New()

	out, err := uc.Execute(context.Background(), UpsertProfileInput{
		UserID:  ownerID,
		Status:  "Developer",
		Skills:  "Go, SQL",
		Company: strPtr("Acme"),
		Bio:     strPtr("hello"),
		Social:  profile.Social{Twitter: strPtr("https://twitter.com/acme")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, out.Profile.Skills)
	require.NotNil(t, out.Profile.Company)
	assert.Equal(t, "Acme", *out.Profile.Company)

	// Second submission omits company and bio: both must survive.
	// Social fields merge one by one.
	out, err = uc.Execute(context.Background(), UpsertProfileInput{
		UserID: ownerID,
		Status: "Senior Developer",
		Skills: "Go",
		Social: profile.Social{Youtube: strPtr("https://youtube.com/acme")},
	})
	require.NoError(t, err)

	p := out.Profile
	assert.Equal(t, "Senior Developer", p.Status)
	assert.Equal(t, []string{"Go"}, p.Skills)
	require.NotNil(t, p.Company)
	assert.Equal(t, "Acme", *p.Company)
	require.NotNil(t, p.Bio)
	assert.Equal(t, "hello", *p.Bio)
	require.NotNil(t, p.Social.Twitter)
	assert.Equal(t, "https://twitter.com/acme", *p.Social.Twitter)
	require.NotNil(t, p.Social.Youtube)
	assert.Equal(t, "https://youtube.com/acme", *p.Social.Youtube)
}

func TestGetProfileByUser_NotFound(t *testing.T) {
	uc := NewGetProfileByUserUseCase(newFakeProfileRepo())

	_, err := uc.Execute(context.Background(), GetProfileByUserInput{TargetUserID: uuid.New()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
