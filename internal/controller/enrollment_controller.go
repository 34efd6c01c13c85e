package controller

import (
	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// List godoc
// @Summary List the caller's enrollments
// @Description Newest first, with course and educator projections.
// @Tags enrollments
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.EnrollmentView} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/enrollments [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.EnrollmentService.ListForStudent(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, views)
}

// swagger:model EnrollRequest
type EnrollRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// Enroll godoc
// @Summary Enroll in a published course
// @Description Students only. Progress starts at 0.
// @Tags enrollments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body EnrollRequest true "Course to enroll in"
// @Success 201 {object} util.Response{data=model.Enrollment} "Created"
// @Failure 403 {object} util.Response "Not a student"
// @Failure 404 {object} util.Response "Course not found or not published"
// @Failure 409 {object} util.Response "Already enrolled"
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(claims.UserID, claims.Role, req.CourseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, enrollment)
}

// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

// UpdateProgress godoc
// @Summary Update progress on an enrollment
// @Description Owner only. Progress is an integer 0-100 and may move backwards.
// @Tags enrollments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Enrollment ID"
// @Param   body body UpdateProgressRequest true "New progress"
// @Success 200 {object} util.Response{data=model.Enrollment} "Success"
// @Failure 400 {object} util.Response "Progress out of range"
// @Failure 404 {object} util.Response "Enrollment not found"
// @Router /api/enrollments/{id} [put]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.UpdateProgress(claims.UserID, enrollmentID, *req.Progress)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, enrollment)
}

// Unenroll godoc
// @Summary Drop an enrollment
// @Description Owner only.
// @Tags enrollments
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Enrollment ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Enrollment not found"
// @Router /api/enrollments/{id} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	enrollmentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.EnrollmentService.Unenroll(claims.UserID, enrollmentID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
