package handler

import (
	"notebin/dto"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

func GetBinHandler(c *gin.Context, notesService *usecase.NotesService, tagsService *usecase.TagsService) {
	userID := c.GetString("user_id")

	notes, err := notesService.ListBin(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	tagIndex, err := tagsService.TagIndex(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes, tagIndex))
}

func SoftDeleteNoteHandler(c *gin.Context, binService *usecase.BinService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := binService.SoftDelete(c.Request.Context(), noteID, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Note moved to bin", "deleted_at": note.DeletedAt})
}

func RestoreNoteHandler(c *gin.Context, binService *usecase.BinService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := binService.Restore(c.Request.Context(), noteID, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Note restored", "pinned": note.Pinned})
}

func PermanentDeleteNoteHandler(c *gin.Context, binService *usecase.BinService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := binService.PermanentDelete(c.Request.Context(), noteID, userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Note permanently deleted"})
}

func RestoreAllHandler(c *gin.Context, binService *usecase.BinService) {
	userID := c.GetString("user_id")

	restored, err := binService.RestoreAll(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"restored": restored})
}

func EraseAllHandler(c *gin.Context, binService *usecase.BinService) {
	userID := c.GetString("user_id")

	erased, err := binService.EraseAll(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"erased": erased})
}
