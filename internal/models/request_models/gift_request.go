package request_models

type CreateGiftRequest struct {
	GiftID            string  `json:"giftId" binding:"required"`
	GiftName          string  `json:"giftName" binding:"required"`
	ImageURL          string  `json:"imageUrl"`
	GiftPrice         float64 `json:"giftPrice" binding:"required"`
	QuantityAvailable int     `json:"quantityAvailable"`
	Category          string  `json:"category"`
	Description       string  `json:"description"`
	Customizable      bool    `json:"customizable"`
}

type UpdateGiftRequest struct {
	GiftName          *string  `json:"giftName"`
	ImageURL          *string  `json:"imageUrl"`
	GiftPrice         *float64 `json:"giftPrice"`
	QuantityAvailable *int     `json:"quantityAvailable"`
	Category          *string  `json:"category"`
	Description       *string  `json:"description"`
	Customizable      *bool    `json:"customizable"`
}

type CreateGiftOrderRequest struct {
	GiftID         string                 `json:"giftId" binding:"required"`
	CID            string                 `json:"cid" binding:"required"`
	Address        string                 `json:"address"`
	PurchaseAmount *float64               `json:"purchaseAmount"`
	Customization  map[string]interface{} `json:"customization"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type GiftListQuery struct {
	Category string   `form:"category"`
	Search   string   `form:"search"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
}
