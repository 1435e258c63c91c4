package model

import (
	"time"
)

// User 用户模型（导入接口的管理端账号）
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email" gorm:"unique"`
	Username     string    `json:"username" db:"username" gorm:"unique"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
