package handler

import (
	"log"

	"notebin/repository"
	"notebin/services"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler blacklists the presented tokens and ends the session bound
// to the session cookie, if any.
func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	accessToken := c.GetString("access_token")
	refreshToken := c.GetHeader("X-Refresh-Token")

	if err := services.BlacklistTokens(accessToken, refreshToken); err != nil {
		log.Printf("failed to blacklist tokens on logout: %v", err)
	}

	if sessionID, err := c.Cookie("session_id"); err == nil && sessionID != "" {
		if err := sessionRepo.EndSession(c.Request.Context(), sessionID); err != nil {
			log.Printf("failed to end session %s: %v", sessionID, err)
		}
		c.SetCookie("session_id", "", -1, "/", "", false, true)
	}

	utils.Success(c, gin.H{"message": "Logged out"})
}
