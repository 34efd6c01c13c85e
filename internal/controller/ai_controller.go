package controller

import (
	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AIService *service.AIService
}

func NewAIController(aiService *service.AIService) *AIController {
	return &AIController{AIService: aiService}
}

// swagger:model GenerateDescriptionRequest
type GenerateDescriptionRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
}

// GenerateDescription godoc
// @Summary Stream a generated course description
// @Description Streams SSE "message" events with description chunks, then an "end" event. Collaborator failures arrive as an "error" event.
// @Tags ai
// @Accept  json
// @Produce  text/event-stream
// @Security ApiKeyAuth
// @Param   body body GenerateDescriptionRequest true "Course title and optional category"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} util.Response "Title is required"
// @Router /api/ai/generate-description [post]
func (c *AIController) GenerateDescription(ctx *gin.Context) {
	var req GenerateDescriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// The request context is cancelled when the client disconnects, which
	// aborts the upstream collaborator call.
	stream, errChan := c.AIService.GenerateDescription(ctx.Request.Context(), req.Title, req.Category)

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	for content := range stream {
		ctx.SSEvent("message", content)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		ctx.SSEvent("error", util.ErrUnavailable.Error())
		ctx.Writer.Flush()
		return
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}
