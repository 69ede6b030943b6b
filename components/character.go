package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	ID        uuid.UUID
	LastSafeX float64 // Last position where the character was safely grounded
	LastSafeY float64
	HasSafe   bool
}

var Character = donburi.NewComponentType[CharacterData]()
