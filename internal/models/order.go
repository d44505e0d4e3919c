// internal/models/order.go
package models

type Order struct {
	BaseModel
	OrderNumber     string      `json:"orderNumber" gorm:"size:20;uniqueIndex;not null"`
	UserID          uint        `json:"userID" gorm:"not null;index"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalAmount     float64     `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	ShippingAddress string      `json:"shippingAddress" gorm:"type:text;not null"`
	Notes           string      `json:"notes" gorm:"type:text"`

	// Relationships
	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	BaseModel
	OrderID   uint    `json:"orderID" gorm:"not null;index"`
	ProductID uint    `json:"productID" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unitPrice" gorm:"type:decimal(10,2);not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Subtotal is the line total at the captured unit price.
func (i OrderItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
