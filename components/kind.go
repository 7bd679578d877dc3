package components

// Kind tags an entity with the role it plays in the survival loop
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindScrap
	KindEnergyCell
)

// String returns the kind name used in logs and snapshots
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindScrap:
		return "scrap"
	case KindEnergyCell:
		return "energy_cell"
	default:
		return "unknown"
	}
}

// IsResource reports whether the kind is a pooled pickup
func (k Kind) IsResource() bool {
	return k == KindScrap || k == KindEnergyCell
}
