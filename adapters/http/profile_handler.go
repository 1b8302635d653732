package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "devconnect/internal/application/usecase/profile"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type ProfileHandler struct {
	getOwnProfile    *profileUC.GetOwnProfileUseCase
	getProfileByUser *profileUC.GetProfileByUserUseCase
	listProfiles     *profileUC.ListProfilesUseCase
	upsertProfile    *profileUC.UpsertProfileUseCase
	deleteAccount    *profileUC.DeleteAccountUseCase
	addExperience    *profileUC.AddExperienceUseCase
	removeExperience *profileUC.RemoveExperienceUseCase
	addEducation     *profileUC.AddEducationUseCase
	removeEducation  *profileUC.RemoveEducationUseCase
	logger           logger.Logger
}

func NewProfileHandler(
	getOwn *profileUC.GetOwnProfileUseCase,
	getByUser *profileUC.GetProfileByUserUseCase,
	list *profileUC.ListProfilesUseCase,
	upsert *profileUC.UpsertProfileUseCase,
	deleteAccount *profileUC.DeleteAccountUseCase,
	addExp *profileUC.AddExperienceUseCase,
	removeExp *profileUC.RemoveExperienceUseCase,
	addEdu *profileUC.AddEducationUseCase,
	removeEdu *profileUC.RemoveEducationUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		getOwnProfile:    getOwn,
		getProfileByUser: getByUser,
		listProfiles:     list,
		upsertProfile:    upsert,
		deleteAccount:    deleteAccount,
		addExperience:    addExp,
		removeExperience: removeExp,
		addEducation:     addEdu,
		removeEducation:  removeEdu,
		logger:           log,
	}
}

// Profile lookups answer 400 (not 404) when the profile is missing; the
// consuming front-end treats that status as "no profile yet".
func abortProfileNotFound(c *gin.Context, err error) bool {
	if errors.Is(err, apperror.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "There is no profile for this user."})
		return true
	}
	return false
}

func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.getOwnProfile.Execute(c.Request.Context(), profileUC.GetOwnProfileInput{UserID: userID})
	if err != nil {
		if abortProfileNotFound(c, err) {
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	output, err := h.listProfiles.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProfileDTO, len(output.Profiles))
	for i, p := range output.Profiles {
		dtos[i] = ToProfileDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProfileHandler) GetProfileByUser(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		// An unparseable id means the same thing as an unknown one.
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "Profile Not Found."})
		return
	}

	output, err := h.getProfileByUser.Execute(c.Request.Context(), profileUC.GetProfileByUserInput{TargetUserID: targetID})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "Profile Not Found."})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile upsert", err))
		return
	}

	input := profileUC.UpsertProfileInput{
		UserID:         userID,
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social:         req.ToDomainSocial(),
	}
	output, err := h.upsertProfile.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	if err := h.deleteAccount.Execute(c.Request.Context(), profileUC.DeleteAccountInput{UserID: userID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User deleted!"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}

	input := profileUC.AddExperienceInput{
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
	output, err := h.addExperience.Execute(c.Request.Context(), input)
	if err != nil {
		if abortProfileNotFound(c, err) {
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	expID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "Profile Not Found!"})
		return
	}

	output, err := h.removeExperience.Execute(c.Request.Context(), profileUC.RemoveExperienceInput{
		UserID:       userID,
		ExperienceID: expID,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "Profile Not Found!"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education", err))
		return
	}

	input := profileUC.AddEducationInput{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
	output, err := h.addEducation.Execute(c.Request.Context(), input)
	if err != nil {
		if abortProfileNotFound(c, err) {
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	eduID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "Profile Not Found!"})
		return
	}

	output, err := h.removeEducation.Execute(c.Request.Context(), profileUC.RemoveEducationInput{
		UserID:      userID,
		EducationID: eduID,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "Profile Not Found!"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
