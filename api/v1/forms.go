package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	service "github.com/hallowlabs/academy-backend/service/v1"
	types "github.com/hallowlabs/academy-backend/types/v1"
	"github.com/hallowlabs/academy-backend/xhttp"
)

// ContactHandler validates the body, then persists best-effort: a missing or
// failing table never turns into a client error.
func ContactHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.ContactRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		service.SubmitContact(c.Request.Context(), svcCtx, req)
		xhttp.OkJson(c, nil)
	}
}

func SubscribeHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.SubscribeRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		service.Subscribe(c.Request.Context(), svcCtx, req)
		xhttp.OkJson(c, nil)
	}
}
