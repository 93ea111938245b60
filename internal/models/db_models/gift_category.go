package db_models

// GiftCategory is a catalog item. QuantityAvailable is never negative;
// orders are rejected once it reaches zero.
type GiftCategory struct {
	BaseModel
	GiftID            string  `gorm:"unique" json:"giftId"`
	GiftName          string  `json:"giftName"`
	ImageURL          string  `json:"imageUrl"`
	GiftPrice         float64 `json:"giftPrice"`
	QuantityAvailable int     `json:"quantityAvailable"`
	Category          string  `json:"category"`
	Description       string  `json:"description"`
	Customizable      bool    `json:"customizable"`
}
