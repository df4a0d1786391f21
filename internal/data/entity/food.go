package entity

type Food struct {
	Base
	Name        string   `db:"name"`
	Price       float64  `db:"price"`
	Category    string   `db:"category"`
	Diet        []string `db:"diet"`
	Ingredients []string `db:"ingredients"`
	Ratings     []int32  `db:"ratings"`
}
