package service

// 通用测试辅助函数

// stringPtr 返回字符串指针
func stringPtr(s string) *string {
	return &s
}

// intPtr 返回int指针
func intPtr(i int) *int {
	return &i
}

// boolPtr 返回bool指针
func boolPtr(b bool) *bool {
	return &b
}
