// File: internal/pkg/response/responser.go
package response

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/ctxkey"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/i18n"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/log"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
)

// EmptyData 是一个用于在 API 成功响应中表示"无数据"的结构体。
// 使用一个具体的空结构体，比直接返回 nil 或 interface{} 更类型安全、意图更明确。
type EmptyData struct{}

// ResponseResult 是一个通用的API响应结构体
type ResponseResult[T any] struct {
	Code      int    `json:"code"`               // 业务响应码
	Message   string `json:"message"`            // 响应消息
	Data      *T     `json:"data,omitempty"`     // 响应数据，成功时返回
	Error     string `json:"error,omitempty"`    // 错误详情，失败时返回
	Timestamp int64  `json:"timestamp"`          // Unix时间戳
	TraceId   string `json:"trace_id,omitempty"` // 请求追踪ID
}

// Success 创建一个成功的响应
func Success[T any](data *T) *ResponseResult[T] {
	return &ResponseResult[T]{
		Code:      xerrors.CodeSuccess.ToInt(),
		Message:   "操作成功",
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
}

// Error 创建一个失败的响应
// 注意：对于失败响应，泛型 T 的具体类型不重要，所以 Data 字段将为 nil
func Error[T any](code int, message string, err string) *ResponseResult[T] {
	return &ResponseResult[T]{
		Code:      code,
		Message:   message,
		Error:     err,
		Timestamp: time.Now().Unix(),
	}
}

// Writer 统一的响应写出接口（在消费端定义）
type Writer interface {
	WriteSuccess(ctx context.Context, w http.ResponseWriter, data any) error
	WriteError(ctx context.Context, w http.ResponseWriter, err error) error
	WriteJSON(ctx context.Context, w http.ResponseWriter, data any, statusCode int) error
}

// JSONWriter Writer 的默认实现：统一 JSON 信封 + 本地化消息 + trace_id
type JSONWriter struct{}

// NewWriter 创建默认响应写出器
func NewWriter() Writer {
	return &JSONWriter{}
}

// WriteSuccess 写出成功响应
func (jw *JSONWriter) WriteSuccess(ctx context.Context, w http.ResponseWriter, data any) error {
	resp := &ResponseResult[any]{
		Code:      xerrors.CodeSuccess.ToInt(),
		Message:   i18n.LocalizedMessage(ctx, xerrors.CodeSuccess),
		Data:      &data,
		Timestamp: time.Now().Unix(),
		TraceId:   ctxkey.GetString(ctx, ctxkey.TraceID),
	}
	return writeJSON(ctx, w, http.StatusOK, resp)
}

// WriteError 写出错误响应；未知错误统一折叠为内部错误
func (jw *JSONWriter) WriteError(ctx context.Context, w http.ResponseWriter, err error) error {
	appErr := xerrors.Wrap(err, xerrors.CodeInternalError, "内部服务错误")
	if appErr == nil {
		appErr = xerrors.FromCode(xerrors.CodeInternalError)
	}

	resp := &ResponseResult[EmptyData]{
		Code:      appErr.Code.ToInt(),
		Message:   i18n.LocalizedMessage(ctx, appErr.Code),
		Error:     appErr.Message,
		Timestamp: time.Now().Unix(),
		TraceId:   ctxkey.GetString(ctx, ctxkey.TraceID),
	}

	// 5xx 级别的错误记录日志，方便排查
	status := appErr.Code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "请求处理失败", log.Any("error", appErr))
	}

	return writeJSON(ctx, w, status, resp)
}

// WriteJSON 直接写出任意 JSON（跳过统一信封）
func (jw *JSONWriter) WriteJSON(ctx context.Context, w http.ResponseWriter, data any, statusCode int) error {
	return writeJSON(ctx, w, statusCode, data)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		// header 已写入，只能记录日志
		log.ErrorContext(ctx, "写入JSON响应失败", log.Any("error", err))
		return err
	}
	return nil
}
