// File: internal/pkg/i18n/error_messages.go
package i18n

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"

	"golang.org/x/text/language"
)

// ErrorMessages 错误消息的多语言映射
var ErrorMessages = map[xerrors.ErrorCode]map[language.Tag]string{
	// 1xxxxx: 通用错误码
	xerrors.CodeSuccess:           {language.Vietnamese: "Thao tác thành công", language.English: "Operation successful"},
	xerrors.CodeInternalError:     {language.Vietnamese: "Lỗi hệ thống", language.English: "Internal server error"},
	xerrors.CodeInvalidParams:     {language.Vietnamese: "Tham số không hợp lệ", language.English: "Invalid parameters"},
	xerrors.CodeInvalidRequest:    {language.Vietnamese: "Yêu cầu không hợp lệ", language.English: "Invalid request format"},
	xerrors.CodeResourceNotFound:  {language.Vietnamese: "Không tìm thấy dữ liệu", language.English: "Resource not found"},
	xerrors.CodeDuplicateResource: {language.Vietnamese: "Dữ liệu đã tồn tại", language.English: "Resource already exists"},
	xerrors.CodeRateLimitExceeded: {language.Vietnamese: "Vượt giới hạn yêu cầu", language.English: "Rate limit exceeded"},
	xerrors.CodeFeatureDisabled:   {language.Vietnamese: "Tính năng đã bị vô hiệu hóa", language.English: "Feature disabled"},

	// 6xxxxx: 业务逻辑错误码
	xerrors.CodeBusinessLogicError:  {language.Vietnamese: "Lỗi nghiệp vụ", language.English: "Business logic error"},
	xerrors.CodeDataIntegrityError:  {language.Vietnamese: "Lỗi toàn vẹn dữ liệu", language.English: "Data integrity error"},
	xerrors.CodeOperationNotAllowed: {language.Vietnamese: "Thao tác không được phép", language.English: "Operation not allowed"},

	// 7xxxxx: 外部服务错误码
	xerrors.CodeExternalServiceError: {language.Vietnamese: "Lỗi dịch vụ bên ngoài", language.English: "External service error"},
	xerrors.CodeDatabaseError:        {language.Vietnamese: "Lỗi cơ sở dữ liệu", language.English: "Database error"},
	xerrors.CodeCacheError:           {language.Vietnamese: "Lỗi bộ nhớ đệm", language.English: "Cache error"},
	xerrors.CodeMessageQueueError:    {language.Vietnamese: "Lỗi hàng đợi tin nhắn", language.English: "Message queue error"},

	// 8xxxxx: 游戏后台业务错误码
	xerrors.CodeGiftcodeNotFound: {language.Vietnamese: "Không tìm thấy giftcode", language.English: "Gift code not found"},
	xerrors.CodeGiftcodeExists:   {language.Vietnamese: "Giftcode đã tồn tại", language.English: "Gift code already exists"},

	xerrors.CodeBossNotFound: {language.Vietnamese: "Không tìm thấy boss", language.English: "Boss not found"},
	xerrors.CodeBossExists:   {language.Vietnamese: "Boss với ID và level_index này đã tồn tại", language.English: "Boss with this id and level_index already exists"},

	xerrors.CodeShopNotFound:    {language.Vietnamese: "Không tìm thấy shop", language.English: "Shop not found"},
	xerrors.CodeTabShopNotFound: {language.Vietnamese: "Không tìm thấy tab shop", language.English: "Shop tab not found"},

	xerrors.CodeMilestoneNotFound: {language.Vietnamese: "Không tìm thấy mốc", language.English: "Milestone not found"},

	xerrors.CodeTopTypeNotFound:   {language.Vietnamese: "Không tìm thấy loại top", language.English: "Leaderboard type not found"},
	xerrors.CodeTopRewardNotFound: {language.Vietnamese: "Không tìm thấy phần thưởng", language.English: "Leaderboard reward not found"},

	xerrors.CodeAccountNotFound: {language.Vietnamese: "Không tìm thấy tài khoản", language.English: "Account not found"},
}

// GetErrorMessage 获取指定语言的错误消息；未登记的错误码退回默认消息
func GetErrorMessage(code xerrors.ErrorCode, lang language.Tag) string {
	if messages, ok := ErrorMessages[code]; ok {
		if msg, ok := messages[lang]; ok {
			return msg
		}
		if msg, ok := messages[DefaultLanguage]; ok {
			return msg
		}
	}
	return code.Message()
}

// LocalizedMessage 从 context 取语言偏好后返回本地化消息
func LocalizedMessage(ctx context.Context, code xerrors.ErrorCode) string {
	return GetErrorMessage(code, GetLanguage(ctx))
}
