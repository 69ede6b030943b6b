package components

import "github.com/yohamta/donburi"

// ClockData is a singleton carrying the delta for the tick being processed.
type ClockData struct {
	DeltaTime float64
	Tick      uint64
}

var Clock = donburi.NewComponentType[ClockData]()
