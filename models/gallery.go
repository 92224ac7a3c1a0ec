package models

// GalleryImage is a storefront banner/photo. DisplayOrder drives the carousel
// position and is rewritten wholesale by the drag-and-drop reorder endpoint.
type GalleryImage struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string `json:"title"`
	Image        string `gorm:"not null" json:"image"`
	DisplayOrder int    `gorm:"index" json:"order"`
	CreatedDate  string `json:"createdDate"`
	CreatedTime  string `json:"createdTime"`
	UpdatedDate  string `json:"updatedDate,omitempty"`
	UpdatedTime  string `json:"updatedTime,omitempty"`
}
