package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	service "github.com/hallowlabs/academy-backend/service/v1"
	types "github.com/hallowlabs/academy-backend/types/v1"
	"github.com/hallowlabs/academy-backend/xhttp"
)

// VerifyEnrollmentHandler checks badge ownership on-chain and patches the
// local cache when the chain knows more than the database.
func VerifyEnrollmentHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.VerifyEnrollmentRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.VerifyEnrollment(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// EnrollHandler submits the enrollment tx and returns its hash immediately.
func EnrollHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.EnrollRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.Enroll(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.CreatedJson(c, res)
	}
}

func GetEnrollmentsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.NewInvalidParamsErr("user addr is null"))
			return
		}

		res, err := service.GetEnrollments(c.Request.Context(), svcCtx, address)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
