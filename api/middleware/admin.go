package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/service/svc"
	"github.com/hallowlabs/academy-backend/xhttp"
)

// WalletHeader carries the caller's claimed wallet address. There are no
// sessions; the gate re-evaluates the allowlist on every request.
const WalletHeader = "X-Wallet-Address"

// AdminRequired rejects requests whose wallet header is absent or not
// allowlisted. Comparison is case-insensitive inside the Authorizer.
func AdminRequired(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.GetHeader(WalletHeader)
		if !svcCtx.Acl.IsAuthorized(address) {
			xhttp.Error(c, errcode.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// CallerAddress reads the wallet header for non-admin identity checks.
func CallerAddress(c *gin.Context) string {
	return c.GetHeader(WalletHeader)
}
