package controllers

import (
	"net/http"

	"festiva/internal/models/request_models"
	"festiva/internal/services"
	"festiva/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

// ListStorybooks godoc
// @Summary List the caller's storybooks
// @Tags Media
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/storybooks [get]
func (m *MediaController) ListStorybooks(c *gin.Context) {
	books, err := m.mediaService.ListStorybooks(c.Request.Context(), customerScope(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, books, "Storybooks fetched successfully")
}

// CreateStorybook godoc
// @Summary Generate an AI storybook
// @Tags Media
// @Accept json
// @Produce json
// @Param request body request_models.CreateStorybookRequest true "Storybook payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/storybooks [post]
func (m *MediaController) CreateStorybook(c *gin.Context) {
	var req request_models.CreateStorybookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	book, err := m.mediaService.CreateStorybook(c.Request.Context(), customerScope(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, book, "Storybook created successfully")
}

// ListInvitations godoc
// @Summary List the caller's invitations
// @Tags Media
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/invitations [get]
func (m *MediaController) ListInvitations(c *gin.Context) {
	invitations, err := m.mediaService.ListInvitations(c.Request.Context(), customerScope(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invitations, "Invitations fetched successfully")
}

// CreateInvitation godoc
// @Summary Create an invitation
// @Tags Media
// @Accept json
// @Produce json
// @Param request body request_models.CreateInvitationRequest true "Invitation payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/invitations [post]
func (m *MediaController) CreateInvitation(c *gin.Context) {
	var req request_models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	invitation, err := m.mediaService.CreateInvitation(c.Request.Context(), customerScope(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, invitation, "Invitation created successfully")
}

// ListPosts godoc
// @Summary List the caller's social media posts
// @Tags Media
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/posts [get]
func (m *MediaController) ListPosts(c *gin.Context) {
	posts, err := m.mediaService.ListPosts(c.Request.Context(), customerScope(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

// CreatePost godoc
// @Summary Generate a social media post
// @Tags Media
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/posts [post]
func (m *MediaController) CreatePost(c *gin.Context) {
	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := m.mediaService.CreatePost(c.Request.Context(), customerScope(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created successfully")
}
