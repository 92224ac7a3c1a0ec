package models

type Category struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"unique;not null" json:"name"`
	NameRU        string `json:"name_ru"`
	Description   string `json:"description"`
	DescriptionRU string `json:"description_ru"`
	CreatedDate   string `json:"createdDate"`
	CreatedTime   string `json:"createdTime"`
	UpdatedDate   string `json:"updatedDate,omitempty"`
	UpdatedTime   string `json:"updatedTime,omitempty"`
}
