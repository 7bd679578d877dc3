package components

// Facing is the horizontal orientation of the player sprite
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// PlayerAnim is the player's animation state
type PlayerAnim uint8

const (
	PlayerIdle PlayerAnim = iota
	PlayerSide
	PlayerUp
	PlayerDown
)

// String returns the animation name
func (a PlayerAnim) String() string {
	switch a {
	case PlayerSide:
		return "side"
	case PlayerUp:
		return "up"
	case PlayerDown:
		return "down"
	default:
		return "idle"
	}
}

// PlayerComponent holds the astronaut's presentation state
type PlayerComponent struct {
	Facing Facing
	Anim   PlayerAnim
	Tint   uint32 // 0xRRGGBB, read once from settings at scene start
}
