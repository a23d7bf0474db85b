// File: internal/pkg/xerrors/codes.go
package xerrors

import "fmt"

// ErrorCode 错误码类型（类型安全）
type ErrorCode int

// IsValid 检查错误码是否在预定义列表中
func (c ErrorCode) IsValid() bool {
	_, exists := codeMessages[c]
	return exists
}

// String 返回错误码的字符串表示
func (c ErrorCode) String() string {
	if msg, ok := codeMessages[c]; ok {
		return fmt.Sprintf("%d (%s)", c, msg)
	}
	return fmt.Sprintf("%d (未定义的错误码)", c)
}

// Message 返回错误码对应的消息
func (c ErrorCode) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return "未知错误"
}

// ToInt 转换为 int（用于 JSON 序列化等场景）
func (c ErrorCode) ToInt() int {
	return int(c)
}

// -----------------------------------------------------------------------------
// 业务错误码统一定义
// 按模块或领域对错误码进行分段，便于管理。
// -----------------------------------------------------------------------------
const (
	// 1xxxxx: 通用错误码
	CodeSuccess           ErrorCode = 100000 // 操作成功
	CodeInternalError     ErrorCode = 100001 // 内部服务错误
	CodeInvalidParams     ErrorCode = 100002 // 参数错误
	CodeInvalidRequest    ErrorCode = 100003 // 请求格式错误
	CodeResourceNotFound  ErrorCode = 100404 // 资源不存在
	CodeDuplicateResource ErrorCode = 100409 // 资源已存在
	CodeRateLimitExceeded ErrorCode = 100429 // 请求频率限制
	CodeFeatureDisabled   ErrorCode = 100503 // 功能已停用

	// 6xxxxx: 业务逻辑错误码
	CodeBusinessLogicError  ErrorCode = 600001 // 业务逻辑错误
	CodeDataIntegrityError  ErrorCode = 600002 // 数据完整性错误
	CodeOperationNotAllowed ErrorCode = 600003 // 操作不被允许

	// 7xxxxx: 外部服务错误码
	CodeExternalServiceError ErrorCode = 700001 // 外部服务错误
	CodeDatabaseError        ErrorCode = 700003 // 数据库错误
	CodeCacheError           ErrorCode = 700004 // 缓存服务错误
	CodeMessageQueueError    ErrorCode = 700005 // 消息队列错误

	// 8xxxxx: 游戏后台业务错误码
	// Giftcode 相关 (80xxxx)
	CodeGiftcodeNotFound ErrorCode = 800001 // 礼品码不存在
	CodeGiftcodeExists   ErrorCode = 800002 // 礼品码已存在

	// Boss 相关 (81xxxx)
	CodeBossNotFound ErrorCode = 810001 // Boss 不存在
	CodeBossExists   ErrorCode = 810002 // 同一 ID 和 level_index 的 Boss 已存在

	// 商店相关 (82xxxx)
	CodeShopNotFound    ErrorCode = 820001 // 商店不存在
	CodeTabShopNotFound ErrorCode = 820002 // 商店 Tab 不存在

	// 里程碑相关 (83xxxx)
	CodeMilestoneNotFound ErrorCode = 830001 // 里程碑不存在

	// 排行榜相关 (84xxxx)
	CodeTopTypeNotFound   ErrorCode = 840001 // 排行榜类型不存在
	CodeTopRewardNotFound ErrorCode = 840002 // 排行榜奖励不存在

	// 玩家账号相关 (85xxxx)
	CodeAccountNotFound ErrorCode = 850001 // 账号不存在
)

// codeMessages 错误码 -> 默认（中文）消息
var codeMessages = map[ErrorCode]string{
	CodeSuccess:           "操作成功",
	CodeInternalError:     "内部服务错误",
	CodeInvalidParams:     "参数错误",
	CodeInvalidRequest:    "请求格式错误",
	CodeResourceNotFound:  "资源不存在",
	CodeDuplicateResource: "资源已存在",
	CodeRateLimitExceeded: "请求频率限制",
	CodeFeatureDisabled:   "功能已停用",

	CodeBusinessLogicError:  "业务逻辑错误",
	CodeDataIntegrityError:  "数据完整性错误",
	CodeOperationNotAllowed: "操作不被允许",

	CodeExternalServiceError: "外部服务错误",
	CodeDatabaseError:        "数据库错误",
	CodeCacheError:           "缓存服务错误",
	CodeMessageQueueError:    "消息队列错误",

	CodeGiftcodeNotFound: "礼品码不存在",
	CodeGiftcodeExists:   "礼品码已存在",

	CodeBossNotFound: "Boss 不存在",
	CodeBossExists:   "Boss 已存在",

	CodeShopNotFound:    "商店不存在",
	CodeTabShopNotFound: "商店 Tab 不存在",

	CodeMilestoneNotFound: "里程碑不存在",

	CodeTopTypeNotFound:   "排行榜类型不存在",
	CodeTopRewardNotFound: "排行榜奖励不存在",

	CodeAccountNotFound: "账号不存在",
}

// HTTPStatus 错误码对应的 HTTP 状态码
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeSuccess:
		return 200
	case CodeInvalidParams, CodeInvalidRequest:
		return 400
	case CodeResourceNotFound, CodeGiftcodeNotFound, CodeBossNotFound,
		CodeShopNotFound, CodeTabShopNotFound, CodeMilestoneNotFound,
		CodeTopTypeNotFound, CodeTopRewardNotFound, CodeAccountNotFound:
		return 404
	case CodeDuplicateResource, CodeGiftcodeExists, CodeBossExists:
		return 409
	case CodeRateLimitExceeded:
		return 429
	case CodeFeatureDisabled:
		return 503
	case CodeBusinessLogicError, CodeDataIntegrityError, CodeOperationNotAllowed:
		return 400
	default:
		return 500
	}
}
