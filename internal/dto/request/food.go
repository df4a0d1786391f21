package request

type AddFoodRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Diet        []string `json:"diet"`
	Ingredients []string `json:"ingredients"`
}

// EditFoodRequest is a full overwrite of the mutable fields, keyed by name.
type EditFoodRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Diet        []string `json:"diet"`
	Ingredients []string `json:"ingredients"`
}
