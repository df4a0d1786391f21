package entity

import (
	"github.com/google/uuid"
)

// Order references its items by food ID. Items are resolved leniently at
// creation time: requested names that match no food are dropped.
type Order struct {
	BaseSimple
	Orderer string      `db:"orderer"`
	PhoneNr string      `db:"phone_nr"`
	Items   []uuid.UUID `db:"items"`
}
