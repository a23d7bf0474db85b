package dto

// BanAccountRequest 封禁/解封账号请求
type BanAccountRequest struct {
	Ban *bool `json:"ban" validate:"required"`
}

// AdjustCashRequest 调整账号 cash 请求
// amount 可为负数（扣减），结果在服务层钳制为不小于 0；
// add_to_danap 为 true 时同步累加充值总额。
type AdjustCashRequest struct {
	Amount     int  `json:"amount" validate:"required"`
	AddToDanap bool `json:"add_to_danap"`
}

// AdjustVangRequest 调整账号金币（vang）请求
// 金币列为 BigInt，请求与响应均以字符串承载避免精度丢失。
type AdjustVangRequest struct {
	Amount int64 `json:"amount,string" validate:"required"`
}
