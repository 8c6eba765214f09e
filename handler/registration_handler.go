package handler

import (
	"notebin/dto"
	"notebin/services"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: email, name and a valid password are required")
		return
	}

	user, err := userService.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	accessToken, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.Created(c, gin.H{
		"user":          dto.ToUserProfileResponse(user),
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}
