package models

type Admin struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"unique;not null" json:"email"`
	Name        string `json:"name"`
	Password    string `json:"-"` // bcrypt hash, never serialized
	Role        string `gorm:"default:admin" json:"role"`
	CreatedDate string `json:"createdDate"`
	CreatedTime string `json:"createdTime"`
	UpdatedDate string `json:"updatedDate,omitempty"`
	UpdatedTime string `json:"updatedTime,omitempty"`
}
