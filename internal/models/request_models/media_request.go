package request_models

type EventDetails struct {
	EventName   string `json:"eventName" binding:"required"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Anecdotes   string `json:"anecdotes"`
}

type CreateStorybookRequest struct {
	Images       []string     `json:"images"`
	EventDetails EventDetails `json:"eventDetails" binding:"required"`
	Tone         string       `json:"tone"`
}

type CreateInvitationRequest struct {
	EventID             string `json:"eventId" binding:"required"`
	GuestID             string `json:"guestId"`
	UserEmail           string `json:"userEmail"`
	Template            string `json:"template"`
	PersonalizedMessage string `json:"personalizedMessage"`
}

type CreatePostRequest struct {
	PostImageURL string   `json:"postImageUrl"`
	EventName    string   `json:"eventName" binding:"required"`
	Description  string   `json:"description"`
	Tone         string   `json:"tone"`
	Platforms    []string `json:"platforms"`
}
