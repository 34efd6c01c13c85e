package controller

import (
	"strconv"

	"eduflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter, answering 400 itself on failure.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
