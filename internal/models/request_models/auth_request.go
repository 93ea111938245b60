package request_models

type SignupRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Phone        string `json:"phone"`
	Category     string `json:"category"`
	BusinessName string `json:"businessName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

type LogoutRequest struct {
	UserID string `json:"userId" binding:"required"`
}
