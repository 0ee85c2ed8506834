// Package response shapes every API reply into the shared success/fail
// envelope expected by the web clients.
package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/webapi/proxyutil"
)

type codeErr struct {
	code uint32
	msg  string
}

func (e *codeErr) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.code, e.msg)
}

func (e *codeErr) Code() uint32 {
	return e.code
}

func (e *codeErr) Message() string {
	return e.msg
}

func AsCodeErr(code uint32, msg string) error {
	return &codeErr{code: code, msg: msg}
}

func Success(c *gin.Context, data interface{}) {
	proxyutil.SuccessJson(c, data)
}

// Error replies with HTTP 200 and the business code in the envelope.
func Error(c *gin.Context, code int, message string) {
	proxyutil.FailJson(c, 200, AsCodeErr(uint32(code), message))
}
