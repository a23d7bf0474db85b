package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	ncMu sync.RWMutex
	nc   *nats.Conn
)

// SetNatsConn 设置全局 NATS 连接（由 main 提供）
func SetNatsConn(conn *nats.Conn) {
	ncMu.Lock()
	defer ncMu.Unlock()
	nc = conn
}

// ChangeEvent 管理后台数据变更事件，游戏服务器订阅后可热加载
type ChangeEvent struct {
	Resource  string `json:"resource"`            // boss / giftcode / shop / milestone / top
	Action    string `json:"action"`              // created / updated / deleted
	ID        string `json:"id,omitempty"`        // 变更对象标识
	Timestamp int64  `json:"timestamp"`           // Unix 时间戳
	TraceID   string `json:"trace_id,omitempty"`  // 请求追踪ID
}

// PublishChange 发布数据变更事件
func PublishChange(ctx context.Context, subject string, event ChangeEvent) error {
	ncMu.RLock()
	conn := nc
	ncMu.RUnlock()
	if conn == nil {
		return nil // 没有连接时静默降级
	}
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event failed: %w", err)
	}
	return conn.Publish(subject, data)
}

// Default subjects
const (
	SubjectBossChanged      = "admin.boss.changed"
	SubjectGiftcodeChanged  = "admin.giftcode.changed"
	SubjectShopChanged      = "admin.shop.changed"
	SubjectMilestoneChanged = "admin.milestone.changed"
	SubjectTopChanged       = "admin.top.changed"
)
