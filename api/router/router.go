package router

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hallowlabs/academy-backend/api/middleware"
	v1 "github.com/hallowlabs/academy-backend/api/v1"
	"github.com/hallowlabs/academy-backend/service/svc"
)

func init() {
	// "wallet" validates hex address shape at the binding layer; the service
	// still checksums through UnifyAddress before anything touches storage.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wallet", func(fl validator.FieldLevel) bool {
			return ethcommon.IsHexAddress(fl.Field().String())
		})
	}
}

func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	if svcCtx.C.Api.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     svcCtx.C.Api.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.WalletHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	admin := middleware.AdminRequired(svcCtx)

	api := r.Group("/api/v1")
	{
		api.GET("/contests", v1.GetContestsHandler(svcCtx))
		api.GET("/contests/:slug", v1.GetContestHandler(svcCtx))
		api.GET("/contests/:slug/submissions", v1.GetContestSubmissionsHandler(svcCtx))
		api.POST("/contests", admin, v1.CreateContestHandler(svcCtx))
		api.PUT("/contests/:id", admin, v1.UpdateContestHandler(svcCtx))
		api.PATCH("/contests/:id/status", admin, v1.UpdateContestStatusHandler(svcCtx))

		api.POST("/submissions", v1.CreateSubmissionHandler(svcCtx))
		api.GET("/submissions/:id/onchain", v1.SyncSubmissionOnChainHandler(svcCtx))
		api.POST("/votes", v1.CastVoteHandler(svcCtx))
		api.DELETE("/votes", v1.RemoveVoteHandler(svcCtx))

		api.GET("/courses", v1.GetCoursesHandler(svcCtx))
		api.GET("/courses/:slug", v1.GetCourseHandler(svcCtx))
		api.POST("/courses", admin, v1.CreateCourseHandler(svcCtx))
		api.GET("/categories", v1.GetCategoriesHandler(svcCtx))
		api.POST("/categories", admin, v1.CreateCategoryHandler(svcCtx))
		api.GET("/levels", v1.GetLevelsHandler(svcCtx))
		api.POST("/levels", admin, v1.CreateLevelHandler(svcCtx))
		api.GET("/instructors", v1.GetInstructorsHandler(svcCtx))
		api.POST("/instructors", admin, v1.CreateInstructorHandler(svcCtx))

		api.GET("/enrollments/:address", v1.GetEnrollmentsHandler(svcCtx))
		api.POST("/enrollments", v1.EnrollHandler(svcCtx))
		api.POST("/enrollments/verify", v1.VerifyEnrollmentHandler(svcCtx))

		api.GET("/users/:address", v1.GetUserHandler(svcCtx))
		api.PATCH("/users/:address", v1.UpdateUserHandler(svcCtx))

		api.POST("/contact", v1.ContactHandler(svcCtx))
		api.POST("/subscribe", v1.SubscribeHandler(svcCtx))
	}

	return r
}
