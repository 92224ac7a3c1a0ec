package models

type Cart struct {
	CartID      uint       `gorm:"primaryKey" json:"cartId"`
	UserID      string     `gorm:"uniqueIndex" json:"uid"`                        // Enforces ONE cart per user
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedDate string     `json:"createdDate"`
	CreatedTime string     `json:"createdTime"`
	UpdatedDate string     `json:"updatedDate,omitempty"`
	UpdatedTime string     `json:"updatedTime,omitempty"`
}

type CartItem struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	CartID     uint `gorm:"index" json:"-"`
	MedicineID uint `json:"medicineId"`
	Quantity   int  `json:"quantity"`
}
