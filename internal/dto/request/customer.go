package request

type CustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Phone string `json:"phone" validate:"required,min=3,max=20"`
}

// FindOrCreateCustomerRequest looks a customer up by phone and registers
// them under Name when no match exists.
type FindOrCreateCustomerRequest struct {
	Phone string `json:"phone" validate:"required,min=3,max=20"`
	Name  string `json:"name" validate:"required,min=1,max=100"`
}
