package lms

import (
	"time"

	"github.com/mitchellh/mapstructure"
)

// Decode 将上游返回的map数据解码为lms结构体
// 宽松模式：数字和字符串互转，RFC3339字符串转time.Time
func Decode(in any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}
