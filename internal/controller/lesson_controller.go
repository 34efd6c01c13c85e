package controller

import (
	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// List godoc
// @Summary List a course's lessons in display order
// @Tags lessons
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Lesson} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/lessons [get]
func (c *LessonController) List(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	lessons, err := c.LessonService.List(courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, lessons)
}

// Create godoc
// @Summary Add a lesson to a course
// @Description Owning educator only. Omitted order appends after the last lesson.
// @Tags lessons
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Param   body body service.AddLessonInput true "Lesson fields"
// @Success 201 {object} util.Response{data=model.Lesson} "Created"
// @Failure 400 {object} util.Response "Validation failure"
// @Failure 403 {object} util.Response "Not the owning educator"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/lessons [post]
func (c *LessonController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var in service.AddLessonInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Add(claims.UserID, courseID, in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// Update godoc
// @Summary Update a lesson
// @Description Owning educator only. The lesson must belong to the course in the path.
// @Tags lessons
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Param   lessonId path int true "Lesson ID"
// @Param   body body service.UpdateLessonInput true "Lesson fields"
// @Success 200 {object} util.Response{data=model.Lesson} "Success"
// @Failure 403 {object} util.Response "Not the owning educator"
// @Failure 404 {object} util.Response "Lesson not found"
// @Router /api/courses/{id}/lessons/{lessonId} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	lessonID, ok := pathID(ctx, "lessonId")
	if !ok {
		return
	}

	var in service.UpdateLessonInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(claims.UserID, courseID, lessonID, in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// Delete godoc
// @Summary Delete a lesson
// @Description Owning educator only. Remaining lessons keep their order values.
// @Tags lessons
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Param   lessonId path int true "Lesson ID"
// @Success 200 {object} util.Response "Success"
// @Failure 403 {object} util.Response "Not the owning educator"
// @Failure 404 {object} util.Response "Lesson not found"
// @Router /api/courses/{id}/lessons/{lessonId} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	lessonID, ok := pathID(ctx, "lessonId")
	if !ok {
		return
	}

	if err := c.LessonService.Delete(claims.UserID, courseID, lessonID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
