package state

import "time"

type stateDTO struct {
	StateKey  string
	Value     []byte
	UpdatedAt time.Time
}
