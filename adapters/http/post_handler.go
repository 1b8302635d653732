package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	postUC "devconnect/internal/application/usecase/post"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

type PostHandler struct {
	createPost    *postUC.CreatePostUseCase
	listPosts     *postUC.ListPostsUseCase
	getPost       *postUC.GetPostUseCase
	deletePost    *postUC.DeletePostUseCase
	likePost      *postUC.LikePostUseCase
	unlikePost    *postUC.UnlikePostUseCase
	addComment    *postUC.AddCommentUseCase
	removeComment *postUC.RemoveCommentUseCase
	rssFeed       *postUC.RSSFeedUseCase
	logger        logger.Logger
}

func NewPostHandler(
	create *postUC.CreatePostUseCase,
	list *postUC.ListPostsUseCase,
	get *postUC.GetPostUseCase,
	del *postUC.DeletePostUseCase,
	like *postUC.LikePostUseCase,
	unlike *postUC.UnlikePostUseCase,
	comment *postUC.AddCommentUseCase,
	uncomment *postUC.RemoveCommentUseCase,
	rss *postUC.RSSFeedUseCase,
	log logger.Logger,
) *PostHandler {
	return &PostHandler{
		createPost:    create,
		listPosts:     list,
		getPost:       get,
		deletePost:    del,
		likePost:      like,
		unlikePost:    unlike,
		addComment:    comment,
		removeComment: uncomment,
		rssFeed:       rss,
		logger:        log,
	}
}

func (h *PostHandler) postIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"msg": "Post not found."})
		return uuid.Nil, false
	}
	return id, true
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for post", err))
		return
	}

	output, err := h.createPost.Execute(c.Request.Context(), postUC.CreatePostInput{
		OwnerID: userID,
		Text:    req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	output, err := h.listPosts.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PostDTO, len(output.Posts))
	for i, p := range output.Posts {
		dtos[i] = ToPostDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	output, err := h.getPost.Execute(c.Request.Context(), postUC.GetPostInput{PostID: id})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	if err := h.deletePost.Execute(c.Request.Context(), postUC.DeletePostInput{PostID: id, UserID: userID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Post removed!"})
}

func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	output, err := h.likePost.Execute(c.Request.Context(), postUC.LikePostInput{PostID: id, UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post).Likes)
}

func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	output, err := h.unlikePost.Execute(c.Request.Context(), postUC.LikePostInput{PostID: id, UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post).Likes)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for comment", err))
		return
	}

	output, err := h.addComment.Execute(c.Request.Context(), postUC.AddCommentInput{
		PostID: id,
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post).Comments)
}

func (h *PostHandler) RemoveComment(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	id, ok := h.postIDParam(c)
	if !ok {
		return
	}

	commentID, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"msg": "Comment not found."})
		return
	}

	output, err := h.removeComment.Execute(c.Request.Context(), postUC.RemoveCommentInput{
		PostID:    id,
		CommentID: commentID,
		UserID:    userID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post).Comments)
}

func (h *PostHandler) RSSFeed(c *gin.Context) {
	feed, err := h.rssFeed.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		c.Error(apperror.NewInternal("failed to render RSS feed", err))
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}
