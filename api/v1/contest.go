package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hallowlabs/academy-backend/api/middleware"
	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	service "github.com/hallowlabs/academy-backend/service/v1"
	types "github.com/hallowlabs/academy-backend/types/v1"
	"github.com/hallowlabs/academy-backend/xhttp"
)

func GetContestsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := parsePage(c)
		res, err := service.GetContests(c.Request.Context(), svcCtx, c.Query("status"), page, pageSize)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func GetContestHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		contestSlug := c.Params.ByName("slug")
		if contestSlug == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.GetContestBySlug(c.Request.Context(), svcCtx, contestSlug)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// CreateContestHandler sits behind the admin gate; the creator is the
// allowlisted wallet from the request header.
func CreateContestHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CreateContestRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.CreateContest(c.Request.Context(), svcCtx, middleware.CallerAddress(c), req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.CreatedJson(c, res)
	}
}

func UpdateContestHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Params.ByName("id"), 10, 32)
		if err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		req := types.UpdateContestRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.UpdateContest(c.Request.Context(), svcCtx, uint(id), req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func UpdateContestStatusHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Params.ByName("id"), 10, 32)
		if err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		req := types.UpdateContestStatusRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.UpdateContestStatus(c.Request.Context(), svcCtx, uint(id), req.Status)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func parsePage(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
