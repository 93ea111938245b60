package controllers

import (
	"net/http"

	"festiva/internal/models/request_models"
	"festiva/internal/services"
	"festiva/pkg/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService services.UserServiceInterface
	authService services.AuthServiceInterface
}

func NewUserController(userService services.UserServiceInterface, authService services.AuthServiceInterface) *UserController {
	return &UserController{
		userService: userService,
		authService: authService,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user with its role-specific profile and log it in
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.SignupRequest true "Signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/signup [post]
func (u *UserController) Signup(c *gin.Context) {
	var req request_models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: name, email, password, role")
		return
	}

	auth, err := u.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, auth, "User registered successfully")
}

// Login godoc
// @Summary Log in
// @Description Authenticate by email and password and issue a token pair
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/login [post]
func (u *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	auth, err := u.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, auth, "Login successful")
}

// Refresh godoc
// @Summary Rotate the token pair
// @Description Exchange a valid refresh token for a new access/refresh pair
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RefreshRequest true "Refresh payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /users/refresh [post]
func (u *UserController) Refresh(c *gin.Context) {
	var req request_models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "No token provided")
		return
	}

	pair, err := u.authService.Refresh(c.Request.Context(), req.Token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pair, "Token refreshed")
}

// Logout godoc
// @Summary Log out
// @Description Clear the stored refresh token; idempotent
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LogoutRequest true "Logout payload"
// @Success 200 {object} utils.APIResponse
// @Router /users/logout [post]
func (u *UserController) Logout(c *gin.Context) {
	var req request_models.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.authService.Logout(c.Request.Context(), req.UserID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out successfully")
}
