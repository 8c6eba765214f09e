package handler

import (
	"notebin/dto"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

func GetProfileHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := userService.Profile(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToUserProfileResponse(user))
}

func ChangePasswordHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request: new password does not meet requirements")
		return
	}

	userID := c.GetString("user_id")
	if err := userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Password changed"})
}
