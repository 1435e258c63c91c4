package utils

import (
	"strings"
)

// absentSentinel 源数据里表示"缺失"的字面量
const absentSentinel = "N/A"

// NormalizeField 清理单个 CSV 单元格：去除首尾空白，
// 空串和 "N/A" 一律视为缺失，返回空串。全库只用这一条缺失规则。
func NormalizeField(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" || value == absentSentinel {
		return ""
	}
	return value
}

// CapLength 把超过 max 个字符的文本截断到 max，返回是否发生了截断。
// 截断按字符计（不是字节），避免在多字节字符中间切断。
func CapLength(value string, max int) (string, bool) {
	runes := []rune(value)
	if len(runes) <= max {
		return value, false
	}
	return string(runes[:max]), true
}

// SplitList 把单元格内逗号分隔的列表拆开并逐项归一化，丢弃空项
func SplitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if item := NormalizeField(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
