package motion

// Phase is the vertical contact state of a character.
type Phase int

const (
	Airborne Phase = iota
	Grounded
)

func (p Phase) String() string {
	if p == Grounded {
		return "grounded"
	}
	return "airborne"
}
