package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Fullname           string `json:"fullname"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Password           string `json:"-"`
	Role               string `json:"role"`
	SubscribeToNews    bool   `json:"subscribeToNews"`
	PasswordResetToken string `json:"-"`
}

type SignupData struct {
	Fullname        string `json:"fullname"`
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"required,min=8"`
	SubscribeToNews bool   `json:"subscribeToNews"`
}

type LoginData struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}
