package request_models

import "time"

type CreateEventRequest struct {
	Date      time.Time              `json:"date" binding:"required"`
	CID       string                 `json:"cid" binding:"required"`
	EventName string                 `json:"eventName"`
	EventType string                 `json:"eventType"`
	Venue     string                 `json:"venue"`
	Budget    *float64               `json:"budget"`
	Vendors   []string               `json:"vendors"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type UpdateEventRequest struct {
	Date      *time.Time             `json:"date"`
	EventName *string                `json:"eventName"`
	EventType *string                `json:"eventType"`
	Venue     *string                `json:"venue"`
	Budget    *float64               `json:"budget"`
	Status    *string                `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type AddVendorRequest struct {
	VendorID string `json:"vendorId" binding:"required"`
}

type TimelineRequest struct {
	EventType string `json:"eventType"`
	EventDate string `json:"eventDate"`
	Venue     string `json:"venue"`
}
