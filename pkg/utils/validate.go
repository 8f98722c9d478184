package utils

// IsBlank 空字符串
func IsBlank(s string) bool {
	return s == ""
}

// IsEqual 值相等
func IsEqual[T comparable](a, b T) bool {
	return a == b
}

// Pick 条件成立时返回 msg，否则返回空串，用于拼装字段错误
func Pick(cond bool, msg string) string {
	if cond {
		return msg
	}
	return ""
}
