package models

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // Placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "Confirmed" // Confirmed by the pharmacy
	OrderStatusDelivered OrderStatus = "Delivered" // Customer received the order
	OrderStatusCancelled OrderStatus = "Cancelled" // Terminal
)

const (
	OrderTypeStandard = "standard"
	OrderTypeWhatsApp = "whatsapp"
)

// Order is a snapshot taken at checkout: customer contact details and each
// line's name/price are copied in and never refreshed, even if the user or
// medicine records change later.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex" json:"orderRef"`
	UserID          string      `gorm:"index;not null" json:"userId"`
	UserEmail       string      `json:"userEmail"`
	UserName        string      `json:"userName"`
	UserPhone       string      `json:"userPhone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"medicines"`
	Subtotal        float64     `json:"subtotal"`
	VAT             float64     `json:"vat"`
	Discount        float64     `json:"discount"`
	TotalPrice      float64     `json:"totalPrice"`
	OrderType       string      `gorm:"type:VARCHAR(20);default:'standard'" json:"orderType"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	OrderDate       string      `json:"orderDate"`
	OrderTime       string      `json:"orderTime"`
	UpdatedDate     string      `json:"updatedDate,omitempty"`
	UpdatedTime     string      `json:"updatedTime,omitempty"`
	CancelledDate   string      `json:"cancelledDate,omitempty"`
	CancelledTime   string      `json:"cancelledTime,omitempty"`
}

type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    uint    `gorm:"index" json:"-"`
	MedicineID uint    `json:"medicineId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Total      float64 `json:"total"`
}
