package handler

import (
	"errors"
	"log"

	"notebin/dto"
	"notebin/errs"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

const resetAcceptedMessage = "If the email exists, a reset link has been sent"

// ForgotPasswordHandler issues a reset token. The response does not reveal
// whether the email maps to an account; only the rate limit surfaces.
func ForgotPasswordHandler(c *gin.Context, recoveryService *usecase.RecoveryService) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	token, err := recoveryService.RequestReset(c.Request.Context(), req.Email, c.ClientIP())
	if err != nil {
		if errors.Is(err, errs.ErrRateLimited) {
			utils.TooManyRequests(c, "Too many reset requests, try again later")
			return
		}
		utils.RespondError(c, err)
		return
	}

	// Mail delivery is out of scope; the token is logged for the operator.
	if token != "" {
		log.Printf("password reset token for %s: %s", req.Email, token)
	}

	utils.Success(c, gin.H{"message": resetAcceptedMessage})
}

func ResetPasswordHandler(c *gin.Context, recoveryService *usecase.RecoveryService) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := recoveryService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Password has been reset"})
}
