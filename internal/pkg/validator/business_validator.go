package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// BusinessValidator 业务规则验证器
type BusinessValidator struct {
	validator *validator.Validate
}

// NewBusinessValidator 创建新的业务验证器
func NewBusinessValidator() *BusinessValidator {
	v := validator.New()
	registerGameRules(v)

	return &BusinessValidator{
		validator: v,
	}
}

// Validate 验证结构体
func (bv *BusinessValidator) Validate(i interface{}) error {
	return bv.validator.Struct(i)
}

// registerGameRules 注册游戏后台专用的验证规则
func registerGameRules(v *validator.Validate) {
	v.RegisterValidation("giftcode_format", validateGiftcodeFormat)
	v.RegisterValidation("payout_type", validatePayoutType)
	v.RegisterValidation("reward_condition", validateRewardCondition)
	v.RegisterValidation("safe_description", validateSafeDescription)
}

// validateGiftcodeFormat 验证礼品码格式
func validateGiftcodeFormat(fl validator.FieldLevel) bool {
	code := fl.Field().String()

	// 礼品码规则：
	// 1. 长度 3-64 字符
	// 2. 只能包含字母、数字、下划线、连字符
	if len(code) < 3 || len(code) > 64 {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Za-z0-9_-]+$`, code)
	return matched
}

// validatePayoutType 验证特殊掉落类型标签（空值表示未使用，由 required 单独约束）
func validatePayoutType(fl validator.FieldLevel) bool {
	t := fl.Field().String()
	if t == "" {
		return true
	}
	switch t {
	case "GOLD", "EXP", "RUBY", "DO_THAN_LINH", "DOT_LIEN":
		return true
	}
	return false
}

// validateRewardCondition 验证掉落条件标签
func validateRewardCondition(fl validator.FieldLevel) bool {
	cond := fl.Field().String()
	if cond == "" {
		return true
	}
	switch cond {
	case "TASK_31", "TASK_32", "TASK_33", "TOP_DAMAGE":
		return true
	}
	return false
}

// validateSafeDescription 验证安全的描述文本
func validateSafeDescription(fl validator.FieldLevel) bool {
	desc := fl.Field().String()

	// 描述规则：
	// 1. 长度不超过 1000 字符
	// 2. 不能包含脚本标签和危险内容
	if utf8.RuneCountInString(desc) > 1000 {
		return false
	}

	// 检查危险内容
	dangerousPatterns := []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "<iframe", "</iframe>", "<object", "</object>",
	}

	lowerDesc := strings.ToLower(desc)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerDesc, pattern) {
			return false
		}
	}

	return true
}
