package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	service "github.com/hallowlabs/academy-backend/service/v1"
	types "github.com/hallowlabs/academy-backend/types/v1"
	"github.com/hallowlabs/academy-backend/xhttp"
)

func GetCoursesHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := parsePage(c)
		res, err := service.GetCourses(c.Request.Context(), svcCtx, page, pageSize)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func GetCourseHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		courseSlug := c.Params.ByName("slug")
		if courseSlug == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.GetCourseBySlug(c.Request.Context(), svcCtx, courseSlug)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// CreateCourseHandler persists the full module/lesson tree atomically.
func CreateCourseHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CreateCourseRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.CreateCourse(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.CreatedJson(c, res)
	}
}

func GetCategoriesHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetCategories(c.Request.Context(), svcCtx)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func CreateCategoryHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CreateCategoryRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.CreateCategory(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.CreatedJson(c, res)
	}
}

func GetLevelsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetLevels(c.Request.Context(), svcCtx)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func CreateLevelHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CreateLevelRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.CreateLevel(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.CreatedJson(c, res)
	}
}

func GetInstructorsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetInstructors(c.Request.Context(), svcCtx)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func CreateInstructorHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CreateInstructorRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.CreateInstructor(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.CreatedJson(c, res)
	}
}
