package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	service "github.com/hallowlabs/academy-backend/service/v1"
	types "github.com/hallowlabs/academy-backend/types/v1"
	"github.com/hallowlabs/academy-backend/xhttp"
)

func CreateSubmissionHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CreateSubmissionRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.CreateSubmission(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.CreatedJson(c, res)
	}
}

func GetContestSubmissionsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		contestSlug := c.Params.ByName("slug")
		if contestSlug == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.GetContestSubmissions(c.Request.Context(), svcCtx, contestSlug, c.Query("sort"))
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// SyncSubmissionOnChainHandler reconciles one submission's contract-assigned
// id on demand.
func SyncSubmissionOnChainHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Params.ByName("id"), 10, 32)
		if err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		res, err := service.SyncSubmissionOnChainID(c.Request.Context(), svcCtx, uint(id))
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func CastVoteHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.VoteRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		res, err := service.CastVote(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.CreatedJson(c, res)
	}
}

func RemoveVoteHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.VoteRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.NewInvalidParamsErr(err.Error()))
			return
		}

		if err := service.RemoveVote(c.Request.Context(), svcCtx, req); err != nil {
			xhttp.Error(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}
