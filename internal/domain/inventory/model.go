package inventory

import "time"

type MoveType string

const (
	MoveIn  MoveType = "in"
	MoveOut MoveType = "out"
)

type Movement struct {
	ID         int64
	CreatedAt  time.Time
	Actor      string // оператор; пусто для служебных движений
	MaterialID string
	Qty        int // > 0 приход, < 0 списание
	Type       MoveType
	Note       string
}
