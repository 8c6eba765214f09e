package handler

import (
	"notebin/repository"
	"notebin/services"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

type twoFactorCodeRequest struct {
	Secret string `json:"secret"`
	Code   string `json:"code" binding:"required"`
}

// Setup2FAHandler generates a fresh TOTP secret. Nothing is enabled until
// the user confirms a code against it.
func Setup2FAHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := userService.Profile(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor authentication is already enabled")
		return
	}

	secret, url, err := services.GenerateTOTPSecret(user.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate secret")
		return
	}

	utils.Success(c, gin.H{"secret": secret, "otpauth_url": url})
}

// Enable2FAHandler confirms the setup code and turns two-factor on, issuing
// one-time recovery codes. The codes are shown exactly once.
func Enable2FAHandler(c *gin.Context, usersRepo *repository.UsersRepo) {
	var req twoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Secret == "" {
		utils.BadRequest(c, "Secret and code required")
		return
	}

	if !services.VerifyTOTP(req.Code, req.Secret) {
		utils.BadRequest(c, "Invalid verification code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}

	userID := c.GetString("user_id")
	hashed := utils.HashRecoveryCodes(recoveryCodes)
	if err := usersRepo.SetTwoFactor(c.Request.Context(), userID, req.Secret, true, hashed); err != nil {
		utils.InternalError(c, "Failed to enable two-factor authentication")
		return
	}

	utils.Success(c, gin.H{
		"message":        "Two-factor authentication enabled",
		"recovery_codes": recoveryCodes,
	})
}

// Disable2FAHandler turns two-factor off after verifying a current code or
// one of the recovery codes.
func Disable2FAHandler(c *gin.Context, userService *usecase.UserService, usersRepo *repository.UsersRepo) {
	var req twoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Code required")
		return
	}

	userID := c.GetString("user_id")
	user, err := userService.Profile(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor authentication is not enabled")
		return
	}

	if !services.VerifyTOTP(req.Code, user.TwoFactorSecret) && !matchRecoveryCode(user.RecoveryCodes, req.Code) {
		utils.BadRequest(c, "Invalid verification code")
		return
	}

	if err := usersRepo.SetTwoFactor(c.Request.Context(), userID, "", false, nil); err != nil {
		utils.InternalError(c, "Failed to disable two-factor authentication")
		return
	}

	utils.Success(c, gin.H{"message": "Two-factor authentication disabled"})
}

func matchRecoveryCode(hashedCodes []string, code string) bool {
	hash := utils.HashString(code)
	for _, h := range hashedCodes {
		if h == hash {
			return true
		}
	}
	return false
}
