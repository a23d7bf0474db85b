package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// pathInt 解析路径参数为整数
func pathInt(c echo.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// queryInt 解析查询参数为整数指针；参数缺失或非法返回 nil
func queryInt(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryIntDefault 解析查询参数为整数，缺失或非法时返回默认值
func queryIntDefault(c echo.Context, name string, def int) int {
	if v := queryInt(c, name); v != nil {
		return *v
	}
	return def
}

// queryIDs 解析逗号分隔的 id 列表查询参数（例如 ?ids=1,2,3）
func queryIDs(c echo.Context, name string) []int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, v)
	}
	return ids
}
