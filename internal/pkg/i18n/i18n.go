// File: internal/pkg/i18n/i18n.go
package i18n

import (
	"context"
	"strings"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/ctxkey"

	"golang.org/x/text/language"
)

// 支持的语言
var (
	// 默认语言为越南语（游戏运营团队所在地区）
	DefaultLanguage = language.Vietnamese
	// 支持的语言列表
	SupportedLanguages = []language.Tag{
		language.Vietnamese, // vi
		language.English,    // en
	}
	// 语言匹配器
	matcher = language.NewMatcher(SupportedLanguages)
)

// WithLanguage 在 context 中设置语言偏好
func WithLanguage(ctx context.Context, lang language.Tag) context.Context {
	return context.WithValue(ctx, ctxkey.Language, lang)
}

// GetLanguage 从 context 中获取语言偏好
func GetLanguage(ctx context.Context) language.Tag {
	if lang, ok := ctx.Value(ctxkey.Language).(language.Tag); ok {
		return lang
	}
	return DefaultLanguage
}

// ParseAcceptLanguage 解析 Accept-Language 头部
// 例如: "vi-VN,vi;q=0.9,en;q=0.8"
func ParseAcceptLanguage(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return DefaultLanguage
	}

	// 解析并匹配最佳语言
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}

	// 使用 matcher 找到最佳匹配
	_, index, _ := matcher.Match(tags...)
	return SupportedLanguages[index]
}

// ParseLanguageCode 从语言代码解析 Tag
// 支持: "vi", "vi-VN", "en", "en-US" 等
func ParseLanguageCode(code string) language.Tag {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultLanguage
	}

	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage
	}

	// 匹配到支持的语言
	_, index, _ := matcher.Match(tag)
	return SupportedLanguages[index]
}
