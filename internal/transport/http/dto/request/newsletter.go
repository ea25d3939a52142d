package request

type NewsletterSubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}

type NewsletterUnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
