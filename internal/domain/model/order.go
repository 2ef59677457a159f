package model

import "time"

// ステータスは開かれた文字列。チェックアウトが付けるのは new だけで、
// それ以外は管理者の自由入力をそのまま保存する。
const (
	OrderStatusNew       = "new"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName  string `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerPhone string `gorm:"type:varchar(30)" json:"customer_phone"`
	Status        string `gorm:"type:varchar(50);not null;default:'new';index" json:"status"`
	//作成時点のカート内容から計算した合計。後の価格変更の影響は受けない。
	Total     float64   `gorm:"not null" json:"total"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
