package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/hallowlabs/academy-backend/errcode"
)

// Response is the uniform envelope every endpoint writes.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: errcode.CodeOK, Msg: "success", Data: data})
}

// CreatedJson is OkJson for freshly persisted resources.
func CreatedJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: errcode.CodeOK, Msg: "success", Data: data})
}

// Error writes the envelope for a coded error. Plain errors collapse into a
// generic 500 so raw DB/RPC detail never reaches the client.
func Error(c *gin.Context, err error) {
	var coded *errcode.Err
	if !errors.As(err, &coded) {
		coded = errcode.ErrInternal
	}
	c.AbortWithStatusJSON(coded.HTTPStatus(), Response{Code: coded.Code(), Msg: coded.Msg()})
}
