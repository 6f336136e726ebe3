package models

import "time"

// Account 对应 users 表。哈希列沿用旧库的 password1 列名。
type Account struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string `gorm:"column:password1;size:255;not null" json:"-"`
}

func (Account) TableName() string { return "users" }

type ContactMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"column:uname;size:128" json:"name" form:"name"`
	Email   string `gorm:"size:255" json:"email" form:"email"`
	Message string `gorm:"type:text" json:"message" form:"message"`
}

func (ContactMessage) TableName() string { return "contact1" }

// PropertyPost 的 JSON 字段名与列名一致，列表接口直接输出行数据。
type PropertyPost struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropertyType string    `gorm:"column:propertyType;size:64" json:"propertyType" form:"propertyType"`
	Location     string    `gorm:"column:location;size:255" json:"location" form:"location"`
	PriceRange   string    `gorm:"column:priceRange;size:64" json:"priceRange" form:"priceRange"`
	Description  string    `gorm:"column:description;type:text" json:"description" form:"description"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (PropertyPost) TableName() string { return "property_posts" }
