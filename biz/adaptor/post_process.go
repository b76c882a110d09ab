package adaptor

import (
	"context"
	"net/http"

	"campus-show/biz/infrastructure/util"
	"campus-show/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PostProcess 统一的响应出口
// 成功直接回JSON，失败把Errno翻译成 {success:false, code, message}
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	s, _ := status.FromError(err)
	c.JSON(httpCode(s.Code()), map[string]any{
		"success": false,
		"code":    int(s.Code()),
		"message": s.Message(),
	})
}

// httpCode grpc错误码到HTTP状态码的映射，业务自定义码一律返回200由前端看code
func httpCode(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Internal:
		return http.StatusBadGateway
	case codes.Unknown:
		return http.StatusInternalServerError
	case codes.Code(1000): // not authentication
		return http.StatusUnauthorized
	default:
		return http.StatusOK
	}
}
