package model

import "time"

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`
	CategoryID  *int64    `gorm:"index" json:"category_id"`
	//レビューから再計算される平均値
	Rating    float64   `gorm:"not null;default:0" json:"rating"`
	Stock     int64     `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
