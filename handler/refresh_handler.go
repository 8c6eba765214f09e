package handler

import (
	"notebin/services"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenHandler rotates the token pair; the presented refresh token is
// blacklisted so it cannot be replayed.
func RefreshTokenHandler(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Refresh token required")
		return
	}

	if services.IsTokenBlacklisted(req.RefreshToken) {
		utils.Unauthorized(c, "Refresh token is no longer valid")
		return
	}

	userID, err := services.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		utils.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	accessToken, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := services.BlacklistTokens("", req.RefreshToken); err != nil {
		utils.InternalError(c, "Failed to rotate refresh token")
		return
	}

	utils.Success(c, gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}
