package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// 对logx的简单封装，保持printf风格的调用习惯

func Info(format string, v ...any) {
	logx.Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.Errorf(format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Errorf(format, v...)
}
