package handler

import (
	"notebin/dto"
	"notebin/model"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

// GetNotesHandler returns the caller's workspace: pinned notes first, then
// newest first.
func GetNotesHandler(c *gin.Context, notesService *usecase.NotesService, tagsService *usecase.TagsService) {
	userID := c.GetString("user_id")

	notes, err := notesService.ListActive(c.Request.Context(), userID)
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

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	note, err := notesService.CreateNote(c.Request.Context(), userID, req.Title, req.Content, req.Media)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	// Empty notes are never persisted; report success with nothing created.
	if note == nil {
		utils.Success(c, gin.H{"message": "Empty note discarded"})
		return
	}

	utils.Created(c, dto.ToNoteResponse(note, nil))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	patch := model.NotePatch{Title: req.Title, Content: req.Content, Pinned: req.Pinned}
	note, err := notesService.UpdateNote(c.Request.Context(), noteID, userID, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note, nil))
}

func TogglePinHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.PinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notesService.TogglePin(c.Request.Context(), noteID, userID, req.Pinned)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"pinned": note.Pinned})
}
