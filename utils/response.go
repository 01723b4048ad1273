// file: utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码约定：1001 参数无效, 4001/4003 会话问题, 404 记录不存在,
// 5000 数据库/下游错误, 5002 ID 分配失败
const (
	CodeInvalidRequest   = 1001
	CodeUnauthenticated  = 4001
	CodeForbidden        = 4003
	CodeNotFound         = 404
	CodeDownstream       = 5000
	CodeAllocationFailed = 5002
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}
