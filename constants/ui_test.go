package constants

import (
	"testing"
)

// TestEnemySpeedTiersOrdered verifies the difficulty tiers are strictly increasing
func TestEnemySpeedTiersOrdered(t *testing.T) {
	if !(EnemySpeedEasy < EnemySpeedNormal && EnemySpeedNormal < EnemySpeedHard) {
		t.Errorf("Expected easy < normal < hard, got %v, %v, %v",
			EnemySpeedEasy, EnemySpeedNormal, EnemySpeedHard)
	}
}

// TestSpawnMarginFitsDefaultWorld verifies random placement has a non-empty range on the default map
func TestSpawnMarginFitsDefaultWorld(t *testing.T) {
	if DefaultWorldWidth-2*SpawnMargin <= 0 || DefaultWorldHeight-2*SpawnMargin <= 0 {
		t.Error("Expected spawn margin to leave room inside the default world")
	}
}

// TestEnergyConstantsConsistent verifies the energy tuning values interact as intended
func TestEnergyConstantsConsistent(t *testing.T) {
	if MaxEnergy%EnergyDecayPerTick != 0 {
		t.Errorf("Expected MaxEnergy to be a multiple of the decay step, got %d and %d",
			MaxEnergy, EnergyDecayPerTick)
	}
	if EnergyCellRestore >= MaxEnergy {
		t.Error("Expected a single cell to restore less than the full tank")
	}
	if KeyHoldWindow <= FrameUpdateInterval {
		t.Error("Expected key hold window to span more than one frame")
	}
}
