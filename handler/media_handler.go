package handler

import (
	"fmt"

	"notebin/services"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

func AddMediaHandler(c *gin.Context, mediaService *usecase.MediaService, maxUploadSize int64) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "No file supplied")
		return
	}
	if fileHeader.Size > maxUploadSize {
		utils.BadRequest(c, fmt.Sprintf("File exceeds the %d byte limit", maxUploadSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequest(c, "Could not read uploaded file")
		return
	}
	defer file.Close()

	attachment, err := mediaService.AddMedia(c.Request.Context(), noteID, userID, file, fileHeader.Filename)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, attachment)
}

func RemoveMediaHandler(c *gin.Context, mediaService *usecase.MediaService) {
	noteID := c.Param("id")
	mediaID := c.Param("mediaId")
	userID := c.GetString("user_id")

	if err := mediaService.RemoveMedia(c.Request.Context(), noteID, mediaID, userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Media removed"})
}

// UploadHandler stores a file without linking it to a note; the client uses
// the returned url when composing.
func UploadHandler(c *gin.Context, storage services.Storage, maxUploadSize int64) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "No file supplied")
		return
	}
	if fileHeader.Size > maxUploadSize {
		utils.BadRequest(c, fmt.Sprintf("File exceeds the %d byte limit", maxUploadSize))
		return
	}
	if !usecase.AllowedMediaFile(fileHeader.Filename) {
		utils.BadRequest(c, "File type is not allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequest(c, "Could not read uploaded file")
		return
	}
	defer file.Close()

	url, err := storage.Store(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		utils.InternalError(c, "Failed to store upload")
		return
	}

	utils.Created(c, gin.H{"url": url})
}
