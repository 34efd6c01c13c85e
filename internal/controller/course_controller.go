package controller

import (
	"strconv"

	"eduflow_backend/internal/service"
	"eduflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService  *service.CourseService
	CatalogService *service.CatalogService
}

func NewCourseController(courseService *service.CourseService, catalogService *service.CatalogService) *CourseController {
	return &CourseController{
		CourseService:  courseService,
		CatalogService: catalogService,
	}
}

// List godoc
// @Summary Browse the published course catalog
// @Description Published courses only, newest first. Search matches title or description case-insensitively.
// @Tags courses
// @Produce  json
// @Param   page query int false "Page number, starting at 1"
// @Param   limit query int false "Page size, 1-50, default 9"
// @Param   search query string false "Substring search"
// @Param   category query string false "Exact category filter"
// @Success 200 {object} util.Response{data=service.CatalogPage} "Success"
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "9"))

	result, err := c.CatalogService.List(service.CatalogQuery{
		Page:     page,
		Limit:    limit,
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// Detail godoc
// @Summary Get a course with its lessons
// @Tags courses
// @Produce  json
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response{data=service.CourseDetail} "Success"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [get]
func (c *CourseController) Detail(ctx *gin.Context) {
	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.CourseService.Detail(courseID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// Create godoc
// @Summary Create a course
// @Description Educators only. New courses default to DRAFT.
// @Tags courses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateCourseInput true "Course fields"
// @Success 201 {object} util.Response{data=model.Course} "Created"
// @Failure 400 {object} util.Response "Validation failure"
// @Failure 403 {object} util.Response "Not an educator"
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var in service.CreateCourseInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(claims.UserID, in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// Update godoc
// @Summary Update a course
// @Description Owner or admin. Absent fields are left unchanged.
// @Tags courses
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Param   body body service.UpdateCourseInput true "Fields to change"
// @Success 200 {object} util.Response{data=model.Course} "Success"
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var in service.UpdateCourseInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(claims.UserID, claims.Role, courseID, in)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// Delete godoc
// @Summary Delete a course
// @Description Owner or admin. Lessons and enrollments are removed with it.
// @Tags courses
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Success 200 {object} util.Response "Success"
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.CourseService.Delete(claims.UserID, claims.Role, courseID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// UploadThumbnail godoc
// @Summary Upload a course thumbnail
// @Tags courses
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Course ID"
// @Param   file formData file true "Thumbnail image (max 5MB)"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 403 {object} util.Response "Not the owner"
// @Failure 404 {object} util.Response "Course not found"
// @Router /api/courses/{id}/thumbnail [post]
func (c *CourseController) UploadThumbnail(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}

	url, err := c.CourseService.UploadThumbnail(ctx.Request.Context(), claims.UserID, claims.Role, courseID, file)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
