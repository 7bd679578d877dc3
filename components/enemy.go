package components

// EnemyAnim is the alien's animation state, derived from its velocity
type EnemyAnim uint8

const (
	EnemyDown EnemyAnim = iota
	EnemyUp
	EnemyLeft
	EnemyRight
)

// String returns the animation name
func (a EnemyAnim) String() string {
	switch a {
	case EnemyUp:
		return "up"
	case EnemyLeft:
		return "left"
	case EnemyRight:
		return "right"
	default:
		return "down"
	}
}

// EnemyComponent marks a pursuing alien
type EnemyComponent struct {
	Anim EnemyAnim
}
