package models

// Medicine is a catalog entry with English and Russian display names.
// CategoryName/CategoryNameRU are denormalized copies refreshed whenever the
// medicine is created or re-categorized.
type Medicine struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID     uint    `gorm:"index" json:"categoryId"`
	CategoryName   string  `json:"categoryName"`
	CategoryNameRU string  `json:"categoryName_ru"`
	NameEN         string  `gorm:"not null;index" json:"name_en"`
	NameRU         string  `gorm:"index" json:"name_ru"`
	Generic        string  `gorm:"index" json:"generic"`
	CompanyName    string  `gorm:"index" json:"companyName"`
	Power          string  `json:"power"`
	Image          string  `json:"image"`
	PackQuantity   string  `json:"quantity"`
	Price          float64 `gorm:"not null" json:"price"`
	DiscountPrice  float64 `json:"discountPrice"`
	CreatedDate    string  `json:"createdDate"`
	CreatedTime    string  `json:"createdTime"`
	UpdatedDate    string  `json:"updatedDate,omitempty"`
	UpdatedTime    string  `json:"updatedTime,omitempty"`
}

// EffectivePrice is the unit price a customer is charged: the discount price
// when one is set, otherwise the base price. A zero discount price means "no
// discount" and never wins over the base price.
func (m Medicine) EffectivePrice() float64 {
	if m.DiscountPrice > 0 {
		return m.DiscountPrice
	}
	return m.Price
}
