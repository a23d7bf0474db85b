// File: internal/pkg/xerrors/errors.go
package xerrors

import (
	"fmt"
	"log/slog"
	"time"
)

// ErrorLevel 错误级别
type ErrorLevel int

const (
	LevelInfo ErrorLevel = iota
	LevelWarn
	LevelError
	LevelCritical
)

func (l ErrorLevel) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ErrorContext 错误上下文信息
type ErrorContext struct {
	TraceID   string                 `json:"trace_id,omitempty"`
	Service   string                 `json:"service,omitempty"`
	Operation string                 `json:"operation,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// AppError 领域错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`

	// 错误分类和级别
	Level ErrorLevel `json:"level,omitempty"`

	// 业务上下文
	Context   *ErrorContext `json:"context,omitempty"`
	Timestamp time.Time     `json:"timestamp,omitempty"`
}

// Error 实现标准 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap 接口
func (e *AppError) Unwrap() error {
	return e.Err
}

// LogValue 实现 slog.LogValuer 接口，避免重复序列化逻辑
func (e *AppError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("code", int(e.Code)),
		slog.String("message", e.Message),
		slog.String("level", e.Level.String()),
	}

	if e.Context != nil {
		if e.Context.TraceID != "" {
			attrs = append(attrs, slog.String("trace_id", e.Context.TraceID))
		}
		if e.Context.Service != "" {
			attrs = append(attrs, slog.String("service", e.Context.Service))
		}
		if e.Context.Operation != "" {
			attrs = append(attrs, slog.String("operation", e.Context.Operation))
		}
	}

	if e.Err != nil {
		attrs = append(attrs, slog.Any("underlying_error", e.Err))
	}

	return slog.GroupValue(attrs...)
}

// WithTraceID 添加 TraceID
func (e *AppError) WithTraceID(traceID string) *AppError {
	if e.Context == nil {
		e.Context = &ErrorContext{}
	}
	e.Context.TraceID = traceID
	return e
}

// WithService 添加服务和操作信息
func (e *AppError) WithService(service, operation string) *AppError {
	if e.Context == nil {
		e.Context = &ErrorContext{}
	}
	e.Context.Service = service
	e.Context.Operation = operation
	return e
}

// WithMetadata 添加任意元数据
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = &ErrorContext{}
	}
	if e.Context.Metadata == nil {
		e.Context.Metadata = make(map[string]interface{})
	}
	e.Context.Metadata[key] = value
	return e
}

// IsCritical 是否为严重错误
func (e *AppError) IsCritical() bool {
	return e.Level == LevelCritical
}

// New 创建新的业务错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Level:     LevelError,
		Timestamp: time.Now(),
	}
}

// NewWithError 创建包装底层错误的业务错误
func NewWithError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Err:       err,
		Level:     LevelError,
		Timestamp: time.Now(),
	}
}

// FromCode 根据错误码创建错误，消息使用错误码的默认消息
func FromCode(code ErrorCode) *AppError {
	return New(code, code.Message())
}

// NewValidationError 创建字段校验错误
func NewValidationError(field, message string) *AppError {
	return New(CodeInvalidParams, fmt.Sprintf("%s: %s", field, message)).withLevel(LevelWarn)
}

// NewNotFoundError 创建资源不存在错误
func NewNotFoundError(resource, identifier string) *AppError {
	return New(CodeResourceNotFound, fmt.Sprintf("%s不存在: %s", resource, identifier)).withLevel(LevelWarn)
}

// NewConflictError 创建资源冲突错误
func NewConflictError(resource, reason string) *AppError {
	return New(CodeDuplicateResource, fmt.Sprintf("%s冲突: %s", resource, reason)).withLevel(LevelWarn)
}

// NewDatabaseError 创建数据库错误
func NewDatabaseError(operation, table string, err error) *AppError {
	e := NewWithError(CodeDatabaseError, fmt.Sprintf("数据库操作失败: %s %s", operation, table), err)
	e.Level = LevelCritical
	return e
}

// NewExternalServiceError 创建外部服务错误
func NewExternalServiceError(service string, err error) *AppError {
	return NewWithError(CodeExternalServiceError, fmt.Sprintf("外部服务 %s 调用失败", service), err)
}

// Wrap 包装任意错误为业务错误；如果已经是 AppError 则保留原始错误码
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return NewWithError(code, message, err)
}

func (e *AppError) withLevel(level ErrorLevel) *AppError {
	e.Level = level
	return e
}
