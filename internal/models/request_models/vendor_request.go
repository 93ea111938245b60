package request_models

type CreateVendorRequest struct {
	Name       string                 `json:"name" binding:"required"`
	Email      string                 `json:"email" binding:"required"`
	Phone      string                 `json:"phone"`
	Category   string                 `json:"category"`
	Location   string                 `json:"location"`
	PriceMin   float64                `json:"priceMin"`
	PriceMax   float64                `json:"priceMax"`
	Services   []string               `json:"services"`
	Portfolio  []string               `json:"portfolio"`
	OtherData  map[string]interface{} `json:"otherData"`
}

type UpdateVendorRequest struct {
	Name         *string  `json:"name"`
	Phone        *string  `json:"phone"`
	Category     *string  `json:"category"`
	Location     *string  `json:"location"`
	PriceMin     *float64 `json:"priceMin"`
	PriceMax     *float64 `json:"priceMax"`
	Availability *bool    `json:"availability"`
	Services     []string `json:"services"`
	Portfolio    []string `json:"portfolio"`
}

type AddReviewRequest struct {
	Rating       float64 `json:"rating" binding:"required"`
	Comment      string  `json:"comment"`
	CustomerName string  `json:"customerName"`
}

type VendorListQuery struct {
	Category  string   `form:"category"`
	Location  string   `form:"location"`
	MinRating *float64 `form:"minRating"`
	MinPrice  *float64 `form:"minPrice"`
	MaxPrice  *float64 `form:"maxPrice"`
	Search    string   `form:"search"`
}

type RecommendationQuery struct {
	Budget      float64 `form:"budget"`
	Location    string  `form:"location"`
	EventType   string  `form:"eventType"`
	Preferences string  `form:"preferences"`
}
