package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/domain/profile"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

func seedProfile(t *testing.T, repo *fakeProfileRepo, ownerID uuid.UUID) {
	t.Helper()
	_, err := repo.Upsert(context.Background(), ownerID, profile.UpsertFields{
		Status: "Developer",
		Skills: []string{"Go"},
	})
	require.NoError(t, err)
}

func TestAddExperience_ValidationCollectsAllViolations(t *testing.T) {
	uc := NewAddExperienceUseCase(newFakeProfileRepo(), nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), AddExperienceInput{UserID: uuid.New()})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	require.Len(t, appErr.Violations, 3)
	assert.Equal(t, "title", appErr.Violations[0].Field)
	assert.Equal(t, "company", appErr.Violations[1].Field)
	assert.Equal(t, "from", appErr.Violations[2].Field)
}

func TestAddExperience_PrependsNewestFirst(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewAddExperienceUseCase(repo, nil, logger.NewNop())
	ownerID := uuid.New()
	seedProfile(t, repo, ownerID)

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), AddExperienceInput{
		UserID: ownerID, Title: "Engineer", Company: "Acme", From: from,
	})
	require.NoError(t, err)

	out, err := uc.Execute(context.Background(), AddExperienceInput{
		UserID: ownerID, Title: "Senior Engineer", Company: "Acme", From: from.AddDate(2, 0, 0), Current: true,
	})
	require.NoError(t, err)

	require.Len(t, out.Profile.Experience, 2)
	assert.Equal(t, "Senior Engineer", out.Profile.Experience[0].Title)
	assert.Equal(t, "Engineer", out.Profile.Experience[1].Title)
	assert.NotEqual(t, uuid.Nil, out.Profile.Experience[0].ID)
	assert.NotEqual(t, out.Profile.Experience[0].ID, out.Profile.Experience[1].ID)
}

func TestAddExperience_NoProfile(t *testing.T) {
	uc := NewAddExperienceUseCase(newFakeProfileRepo(), nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), AddExperienceInput{
		UserID: uuid.New(), Title: "Engineer", Company: "Acme", From: time.Now(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestRemoveExperience(t *testing.T) {
	repo := newFakeProfileRepo()
	addUC := NewAddExperienceUseCase(repo, nil, logger.NewNop())
	removeUC := NewRemoveExperienceUseCase(repo, nil, logger.NewNop())
	ownerID := uuid.New()
	seedProfile(t, repo, ownerID)

	out, err := addUC.Execute(context.Background(), AddExperienceInput{
		UserID: ownerID, Title: "Engineer", Company: "Acme", From: time.Now(),
	})
	require.NoError(t, err)
	expID := out.Profile.Experience[0].ID

	t.Run("unknown id", func(t *testing.T) {
		_, err := removeUC.Execute(context.Background(), RemoveExperienceInput{
			UserID: ownerID, ExperienceID: uuid.New(),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("removes the record", func(t *testing.T) {
		removed, err := removeUC.Execute(context.Background(), RemoveExperienceInput{
			UserID: ownerID, ExperienceID: expID,
		})
		require.NoError(t, err)
		assert.Empty(t, removed.Profile.Experience)
	})
}

func TestAddEducation_Validation(t *testing.T) {
	uc := NewAddEducationUseCase(newFakeProfileRepo(), nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), AddEducationInput{UserID: uuid.New()})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	require.Len(t, appErr.Violations, 4)
	assert.Equal(t, "school", appErr.Violations[0].Field)
	assert.Equal(t, "degree", appErr.Violations[1].Field)
	assert.Equal(t, "fieldofstudy", appErr.Violations[2].Field)
	assert.Equal(t, "from", appErr.Violations[3].Field)
}
