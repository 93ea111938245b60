package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type GiftOrder struct {
	BaseModel
	OrderID        string         `gorm:"unique" json:"orderId"`
	GiftRef        uuid.UUID      `gorm:"type:uuid" json:"giftId"`
	CustomerID     uuid.UUID      `gorm:"type:uuid" json:"cid"`
	Address        string         `json:"address"`
	InvoiceID      string         `json:"invoiceId"`
	PurchaseAmount float64        `json:"purchaseAmount"`
	Status         string         `gorm:"default:pending" json:"status"`
	Customization  datatypes.JSON `json:"customization"`
}
