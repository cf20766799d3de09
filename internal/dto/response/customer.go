package response

import (
	"time"

	"cinema-manager/internal/data/entity"
)

type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerLookupResponse tells the booking screen whether the phone number
// produced a new registration.
type CustomerLookupResponse struct {
	CustomerResponse
	Created bool `json:"created"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
	}
}
