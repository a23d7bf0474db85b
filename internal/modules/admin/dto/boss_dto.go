package dto

import "github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"

// 新建 Boss 时编码列的默认值，与游戏服务端的初始配置保持一致。
const (
	defaultBossHP     = "[0]"
	defaultBossOutfit = "[-1,-1,-1,-1,-1,-1]"
	defaultEmptyList  = "[]"
)

// CreateBossRequest 创建 Boss 请求
// 编码列（hp/outfit/...）为对应 JSON 方言的文本，缺省时填充默认值。
type CreateBossRequest struct {
	ID                    int     `json:"id" validate:"gte=0"`
	LevelIndex            int     `json:"level_index" validate:"gte=0"`
	BossName              string  `json:"boss_name" validate:"required,max=100"`
	DisplayName           string  `json:"display_name" validate:"max=100"`
	LevelName             string  `json:"level_name" validate:"max=100"`
	Gender                int     `json:"gender" validate:"gte=0,lte=2"`
	Dame                  int64   `json:"dame,string" validate:"gte=0"`
	HP                    *string `json:"hp,omitempty"`
	Outfit                *string `json:"outfit,omitempty"`
	MapJoin               *string `json:"map_join,omitempty"`
	AppearType            string  `json:"appear_type"`
	SecondsRest           int     `json:"seconds_rest" validate:"gte=0"`
	Skills                *string `json:"skills,omitempty"`
	TextStart             *string `json:"text_start,omitempty"`
	TextMid               *string `json:"text_mid,omitempty"`
	TextEnd               *string `json:"text_end,omitempty"`
	Rewards               *string `json:"rewards,omitempty"`
	BossesAppearTogether  *string `json:"bosses_appear_together,omitempty"`
	IsNotifyDisabled      bool    `json:"is_notify_disabled"`
	IsZone01SpawnDisabled *bool   `json:"is_zone01_spawn_disabled,omitempty"`
	SpecialClass          *string `json:"special_class,omitempty"`
	AutoSpawn             *bool   `json:"auto_spawn,omitempty"`
}

// ToEntity 转换为实体并填充缺省列
func (r *CreateBossRequest) ToEntity() *entity.BossData {
	boss := &entity.BossData{
		ID:                    r.ID,
		LevelIndex:            r.LevelIndex,
		BossName:              r.BossName,
		DisplayName:           r.DisplayName,
		LevelName:             r.LevelName,
		Gender:                r.Gender,
		Dame:                  r.Dame,
		HP:                    stringOrDefault(r.HP, defaultBossHP),
		Outfit:                stringOrDefault(r.Outfit, defaultBossOutfit),
		MapJoin:               stringOrDefault(r.MapJoin, defaultEmptyList),
		AppearType:            r.AppearType,
		SecondsRest:           r.SecondsRest,
		Skills:                stringOrDefault(r.Skills, defaultEmptyList),
		TextStart:             stringOrDefault(r.TextStart, defaultEmptyList),
		TextMid:               stringOrDefault(r.TextMid, defaultEmptyList),
		TextEnd:               stringOrDefault(r.TextEnd, defaultEmptyList),
		Rewards:               stringOrDefault(r.Rewards, defaultEmptyList),
		BossesAppearTogether:  r.BossesAppearTogether,
		IsNotifyDisabled:      r.IsNotifyDisabled,
		IsZone01SpawnDisabled: boolOrDefault(r.IsZone01SpawnDisabled, true),
		SpecialClass:          r.SpecialClass,
		AutoSpawn:             boolOrDefault(r.AutoSpawn, true),
	}
	return boss
}

// UpdateBossRequest 更新 Boss 请求（部分更新，主键不可改）
type UpdateBossRequest struct {
	BossName              *string `json:"boss_name,omitempty" validate:"omitempty,max=100"`
	DisplayName           *string `json:"display_name,omitempty" validate:"omitempty,max=100"`
	LevelName             *string `json:"level_name,omitempty" validate:"omitempty,max=100"`
	Gender                *int    `json:"gender,omitempty" validate:"omitempty,gte=0,lte=2"`
	Dame                  *int64  `json:"dame,string,omitempty" validate:"omitempty,gte=0"`
	HP                    *string `json:"hp,omitempty"`
	Outfit                *string `json:"outfit,omitempty"`
	MapJoin               *string `json:"map_join,omitempty"`
	AppearType            *string `json:"appear_type,omitempty"`
	SecondsRest           *int    `json:"seconds_rest,omitempty" validate:"omitempty,gte=0"`
	Skills                *string `json:"skills,omitempty"`
	TextStart             *string `json:"text_start,omitempty"`
	TextMid               *string `json:"text_mid,omitempty"`
	TextEnd               *string `json:"text_end,omitempty"`
	Rewards               *string `json:"rewards,omitempty"`
	BossesAppearTogether  *string `json:"bosses_appear_together,omitempty"`
	IsNotifyDisabled      *bool   `json:"is_notify_disabled,omitempty"`
	IsZone01SpawnDisabled *bool   `json:"is_zone01_spawn_disabled,omitempty"`
	SpecialClass          *string `json:"special_class,omitempty"`
	AutoSpawn             *bool   `json:"auto_spawn,omitempty"`
}

// Updates 转换为列名到新值的映射
func (r *UpdateBossRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	putString := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	putString("boss_name", r.BossName)
	putString("display_name", r.DisplayName)
	putString("level_name", r.LevelName)
	putString("hp", r.HP)
	putString("outfit", r.Outfit)
	putString("map_join", r.MapJoin)
	putString("appear_type", r.AppearType)
	putString("skills", r.Skills)
	putString("text_start", r.TextStart)
	putString("text_mid", r.TextMid)
	putString("text_end", r.TextEnd)
	putString("rewards", r.Rewards)

	if r.Gender != nil {
		updates["gender"] = *r.Gender
	}
	if r.Dame != nil {
		updates["dame"] = *r.Dame
	}
	if r.SecondsRest != nil {
		updates["seconds_rest"] = *r.SecondsRest
	}
	if r.BossesAppearTogether != nil {
		updates["bosses_appear_together"] = *r.BossesAppearTogether
	}
	if r.IsNotifyDisabled != nil {
		updates["is_notify_disabled"] = *r.IsNotifyDisabled
	}
	if r.IsZone01SpawnDisabled != nil {
		updates["is_zone01_spawn_disabled"] = *r.IsZone01SpawnDisabled
	}
	if r.SpecialClass != nil {
		updates["special_class"] = *r.SpecialClass
	}
	if r.AutoSpawn != nil {
		updates["auto_spawn"] = *r.AutoSpawn
	}
	return updates
}

func stringOrDefault(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
