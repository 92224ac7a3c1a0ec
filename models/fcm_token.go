package models

// FCMToken holds the most recent push token per admin. Upsert-only, no
// history: a re-registration overwrites whatever was there.
type FCMToken struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	AdminID     uint   `gorm:"uniqueIndex" json:"adminId"`
	Token       string `gorm:"not null" json:"token"`
	UpdatedDate string `json:"updatedDate"`
	UpdatedTime string `json:"updatedTime"`
}
