package types

type UpdateUserRequest struct {
	DisplayName string `json:"display_name" binding:"max=100"`
	Email       string `json:"email" binding:"omitempty,email"`
	AvatarURL   string `json:"avatar_url" binding:"max=500"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"max=200"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
