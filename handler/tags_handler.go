package handler

import (
	"notebin/dto"
	"notebin/usecase"
	"notebin/utils"

	"github.com/gin-gonic/gin"
)

func GetTagsHandler(c *gin.Context, tagsService *usecase.TagsService) {
	userID := c.GetString("user_id")

	tags, err := tagsService.ListTags(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToTagResponses(tags))
}

func CreateTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	tag, err := tagsService.FindOrCreate(c.Request.Context(), userID, req.Name, req.Color)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, dto.ToTagResponse(tag))
}

func AttachTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.AttachTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := tagsService.Attach(c.Request.Context(), noteID, userID, req.TagName)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.ToTagResponse(tag))
}

func DetachTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	noteID := c.Param("id")
	tagID := c.Param("tagId")
	userID := c.GetString("user_id")

	if err := tagsService.Detach(c.Request.Context(), noteID, tagID, userID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Tag removed from note"})
}

// BatchApplyTagHandler tags a set of notes in one unit; applied_count counts
// only the new associations.
func BatchApplyTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	var req dto.BatchApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	result, err := tagsService.BatchApply(c.Request.Context(), userID, req.TagName, req.NoteIDs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, dto.BatchApplyResponse{
		Tag:          dto.ToTagResponse(result.Tag),
		AppliedCount: int(result.AppliedCount),
	})
}
