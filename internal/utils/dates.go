package utils

import (
	"fmt"
	"time"
)

// dateLayouts 按固定顺序尝试的日期格式，命中第一个就返回。
// 01/02/2020 这类写法在 DD/MM 和 MM/DD 下都合法，
// 只按列表顺序取先命中的（DD/MM 在前），不做任何猜测。
var dateLayouts = []string{
	"2006-01-02", // YYYY-MM-DD
	"02/01/2006", // DD/MM/YYYY
	"01/02/2006", // MM/DD/YYYY
	"2006/01/02", // YYYY/MM/DD
	"02-01-2006", // DD-MM-YYYY
	"01-02-2006", // MM-DD-YYYY
}

// ParseDate 依次用各格式解析日期，全部失败时返回错误。
// 是否把解析失败当作致命错误由调用方决定。
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("日期为空")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法识别的日期格式: %q", value)
}
