package models

import "time"

// User mirrors the profile the identity provider hands us. The UID is issued
// externally and accepted as-is; every cart and order hangs off it.
type User struct {
	ID            string    `gorm:"primaryKey" json:"uid"`
	Email         string    `gorm:"unique;not null" json:"email"`
	DisplayName   string    `json:"displayName"`
	PhotoURL      string    `json:"photoURL"`
	PhoneNumber   string    `json:"phoneNumber"`
	Address       string    `json:"address"`
	Role          string    `gorm:"default:customer" json:"role"`
	CreatedAt     time.Time `json:"-"`
	CreatedDate   string    `json:"createdDate"`
	CreatedTime   string    `json:"createdTime"`
	UpdatedDate   string    `json:"updatedDate,omitempty"`
	UpdatedTime   string    `json:"updatedTime,omitempty"`
	LastLoginDate string    `json:"lastLoginDate"`
	LastLoginTime string    `json:"lastLoginTime"`
}

// DisplayLabel is what admin-facing surfaces call the customer.
func (u User) DisplayLabel() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}
