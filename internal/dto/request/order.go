package request

type CreateOrderRequest struct {
	Orderer string   `json:"orderer" validate:"required"`
	PhoneNr string   `json:"phoneNr" validate:"required"`
	Items   []string `json:"items" validate:"required"`
}
