package handler

import (
	"time"

	"notebin/dto"
	"notebin/middleware"
	"notebin/repository"
	"notebin/services"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

func LoginHandler(c *gin.Context, userService *usecase.UserService, sessionRepo *repository.SessionRepo) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := userService.Authenticate(c.Request.Context(), req.Email, req.Password, req.TOTPCode)
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

	session, err := middleware.CreateSession(c, user.UserID, sessionRepo, 24*time.Hour)
	if err != nil {
		utils.InternalError(c, "Failed to create session")
		return
	}

	utils.Success(c, gin.H{
		"user":          dto.ToUserProfileResponse(user),
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"session_id":    session.SessionID,
	})
}
