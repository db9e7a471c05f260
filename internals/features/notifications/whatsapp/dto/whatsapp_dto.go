package dto

type ConectarWhatsAppRequest struct {
	Token string `json:"token" validate:"required,min=8"`
}

type WhatsAppConnectionResponse struct {
	Status string `json:"status"`
}
