package handler

import (
	"time"

	"notebin/repository"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

var serverStartTime = time.Now()

func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status": "ok",
		"uptime": time.Since(serverStartTime).String(),
	})
}

// StatsHandler reports process health plus the caller's note counts.
func StatsHandler(c *gin.Context, notesRepo *repository.NotesRepo, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	total, err := notesRepo.CountUserNotes(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to count notes")
		return
	}

	binned, err := notesService.ListBin(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load bin")
		return
	}

	utils.Success(c, gin.H{
		"notes_total":  total,
		"notes_binned": len(binned),
		"notes_active": total - int64(len(binned)),
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
			"uptime":         time.Since(serverStartTime).String(),
		},
	})
}
