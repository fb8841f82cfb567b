package structs

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Stone   string `json:"stone" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,min=5,max=5000"`
}
