package handler

import (
	"notebin/repository"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

func GetActiveSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	sessions, err := sessionRepo.GetActiveSessions(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load sessions")
		return
	}

	utils.Success(c, sessions)
}

// LogoutAllSessionsHandler ends every active session of the caller, the
// current one included.
func LogoutAllSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	ended, err := sessionRepo.EndAllSessions(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", false, true)
	utils.Success(c, gin.H{"sessions_ended": ended})
}
