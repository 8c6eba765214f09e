package middleware

import (
	"context"
	"fmt"
	"time"

	"notebin/model"
	"notebin/repository"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

// Sessions are ended after two days without activity, whatever their
// nominal expiry.
const sessionInactivityLimit = 48 * time.Hour

// SessionMiddleware resolves the session cookie, enforces the inactivity
// limit and refreshes the last-activity stamp. Requests without a valid
// session pass through; auth still happens on the token.
func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil {
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(c.Request.Context(), sessionID)
		if err != nil || !session.IsActive {
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > sessionInactivityLimit {
			session.IsActive = false
			sessionRepo.UpdateSession(c.Request.Context(), session)
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		sessionRepo.UpdateSession(c.Request.Context(), session)

		c.Set("session", session)
		c.Next()
	}
}

// CreateSession records a new login session and sets the cookie.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo, duration time.Duration) (*model.Session, error) {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	session := &model.Session{
		SessionID:      utils.GenerateID(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		IPAddress:      c.ClientIP(),
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(duration),
		LastActivityAt: time.Now(),
		IsActive:       true,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	if err := sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	c.SetCookie(
		"session_id",
		session.SessionID,
		int(duration.Seconds()),
		"/",
		"",
		true,
		true,
	)
	return session, nil
}
