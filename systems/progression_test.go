package systems

import (
	"testing"

	"github.com/lixenwraith/planet-survivor/engine"
)

func newTracker() (*Progression, *engine.EventQueue) {
	q := engine.NewEventQueue()
	return NewProgression(engine.NewSimulationState(engine.DifficultyNormal), q), q
}

func countEvents(evs []engine.GameEvent, t engine.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func TestScoreMonotonicMultipleOfTen(t *testing.T) {
	p, _ := newTracker()
	prev := 0
	for i := 0; i < 250; i++ {
		p.OnCollectScrap()
		s := p.State().Score
		if s < prev {
			t.Fatalf("Score decreased from %d to %d", prev, s)
		}
		if s%10 != 0 {
			t.Fatalf("Score %d is not a multiple of 10", s)
		}
		prev = s
	}
}

func TestLevelIncreasesOncePerHundred(t *testing.T) {
	p, q := newTracker()
	for i := 1; i <= 55; i++ {
		p.OnCollectScrap()
		want := 1 + (i*10)/100
		if got := p.State().Level; got != want {
			t.Fatalf("After %d scrap expected level %d, got %d", i, want, got)
		}
	}
	if got := countEvents(q.Consume(), engine.EventLevelUp); got != 5 {
		t.Errorf("Expected 5 level-up events, got %d", got)
	}
}

func TestEnemyCountFollowsLevelUps(t *testing.T) {
	p, _ := newTracker()
	enemies := 1
	p.SpawnEnemy = func() engine.Entity {
		enemies++
		return engine.Entity(enemies)
	}

	for n := 1; n <= 9; n++ {
		for i := 0; i < 10; i++ {
			p.OnCollectScrap()
		}
		// N level-ups reach level N+1, one enemy per even level
		want := 1 + (n+1)/2
		if enemies != want {
			t.Errorf("After %d level-ups expected %d enemies, got %d", n, want, enemies)
		}
	}
}

func TestEnergyStaysInRange(t *testing.T) {
	p, _ := newTracker()
	ops := []func(){p.OnCollectEnergyCell, p.OnEnergyTick, p.OnEnergyTick, p.OnCollectEnergyCell}
	for i := 0; i < 400; i++ {
		ops[i%len(ops)]()
		if p.State().GameOver {
			break
		}
		if e := p.State().Energy; e < 0 || e > 100 {
			t.Fatalf("Energy %d out of range after op %d", e, i)
		}
	}
}

func TestEnergyCellCapsAtMax(t *testing.T) {
	p, _ := newTracker()
	p.State().Energy = 90
	p.OnCollectEnergyCell()
	if got := p.State().Energy; got != 100 {
		t.Errorf("Expected energy capped at 100, got %d", got)
	}
	p.State().Energy = 50
	p.OnCollectEnergyCell()
	if got := p.State().Energy; got != 70 {
		t.Errorf("Expected 70, got %d", got)
	}
}

func TestEnergyTickDepletion(t *testing.T) {
	for _, start := range []int{1, 2} {
		p, q := newTracker()
		p.State().Energy = start
		p.OnEnergyTick()

		s := p.State()
		if s.Energy != 100 || s.Lives != 2 {
			t.Errorf("Energy %d: expected energy=100 lives=2, got energy=%d lives=%d", start, s.Energy, s.Lives)
		}
		evs := q.Consume()
		if countEvents(evs, engine.EventEnergyDepleted) != 1 || countEvents(evs, engine.EventLifeLost) != 1 {
			t.Errorf("Expected depletion and life-lost events, got %+v", evs)
		}
	}
}

func TestEnergyTickNormalDrain(t *testing.T) {
	p, _ := newTracker()
	p.OnEnergyTick()
	if got := p.State().Energy; got != 98 {
		t.Errorf("Expected 98, got %d", got)
	}
	if got := p.State().Lives; got != 3 {
		t.Errorf("Expected lives unchanged, got %d", got)
	}
}

func TestLivesDecreaseAndLatch(t *testing.T) {
	p, q := newTracker()
	reported := -1
	calls := 0
	p.GameOver = func(score int) {
		reported = score
		calls++
	}

	p.OnCollectScrap()
	p.OnCollectScrap()
	p.OnEnemyContact()
	p.OnEnergyTick()
	if p.State().Lives != 2 {
		t.Fatalf("Expected 2 lives, got %d", p.State().Lives)
	}
	p.State().Energy = 1
	p.OnEnergyTick()
	if p.State().Lives != 1 || p.State().GameOver {
		t.Fatalf("Expected 1 life and running, got %+v", *p.State())
	}

	p.OnEnemyContact()
	s := p.State()
	if s.Lives != 0 || !s.GameOver {
		t.Fatalf("Expected game over at 0 lives, got %+v", *s)
	}
	if reported != 20 || calls != 1 {
		t.Errorf("Expected final score 20 reported once, got %d (%d calls)", reported, calls)
	}

	// Every operation is inert after the latch
	before := *s
	p.OnCollectScrap()
	p.OnCollectEnergyCell()
	p.OnEnergyTick()
	p.OnEnemyContact()
	p.LoseLife()
	if *s != before {
		t.Errorf("Expected state frozen, before %+v after %+v", before, *s)
	}
	if calls != 1 {
		t.Errorf("Expected game over reported once, got %d", calls)
	}
	if got := countEvents(q.Consume(), engine.EventGameOver); got != 1 {
		t.Errorf("Expected one game-over event, got %d", got)
	}
}

func TestScenarioTenScrap(t *testing.T) {
	p, _ := newTracker()
	enemies := 1
	p.SpawnEnemy = func() engine.Entity {
		enemies++
		return 0
	}

	for i := 0; i < 10; i++ {
		p.OnCollectScrap()
	}
	s := p.State()
	if s.Score != 100 || s.Level != 2 || s.Energy != 100 || enemies != 2 {
		t.Errorf("Expected score=100 level=2 energy=100 enemies=2, got %+v enemies=%d", *s, enemies)
	}
}

func TestScenarioLastLifeEnemyContact(t *testing.T) {
	p, _ := newTracker()
	p.State().Lives = 1
	p.State().Score = 370
	reported := -1
	p.GameOver = func(score int) { reported = score }

	p.OnEnemyContact()
	if !p.State().GameOver || p.State().Lives != 0 {
		t.Fatalf("Expected game over, got %+v", *p.State())
	}
	if reported != 370 {
		t.Errorf("Expected final score 370, got %d", reported)
	}
	p.OnCollectScrap()
	if p.State().Score != 370 {
		t.Errorf("Expected score frozen at 370, got %d", p.State().Score)
	}
}

func TestClampRepairsOutOfRangeWrites(t *testing.T) {
	p, _ := newTracker()
	p.State().Energy = 250
	p.State().Score = -40
	p.OnCollectEnergyCell()
	if p.State().Energy != 100 || p.State().Score != 0 {
		t.Errorf("Expected clamped energy=100 score=0, got %+v", *p.State())
	}
}
