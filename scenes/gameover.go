package scenes

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/planet-survivor/constants"
	"github.com/lixenwraith/planet-survivor/engine"
	"github.com/lixenwraith/planet-survivor/render"
	"github.com/lixenwraith/planet-survivor/storage"
)

const (
	gameOverRetry = iota
	gameOverMenu
)

// GameOver shows the final score and stores records
type GameOver struct {
	d          *Deps
	list       *menuList
	score      int
	level      int
	difficulty string

	newRecord bool
	best      int
	flash     time.Duration
}

func NewGameOver(d *Deps) *GameOver {
	return &GameOver{d: d, list: newMenuList("Play again", "Back to menu")}
}

func (s *GameOver) Init(data engine.SceneData) {
	s.score = max(0, data.Int("score", 0))
	s.level = data.Int("level", constants.StartLevel)
	s.difficulty = data.String("difficulty", string(engine.DifficultyNormal))
}

// Create compares the score with the stored record and logs the run
// Storage failures are logged, the screen is shown regardless
func (s *GameOver) Create() error {
	ctx := s.d.ctx()
	log := s.d.logger()

	rec, best, err := s.d.Settings.SubmitScore(ctx, s.score)
	if err != nil {
		log.Warnf("failed to store high score: %v", err)
	}
	s.newRecord, s.best = rec, best
	if rec {
		s.flash = constants.NewRecordFlashDuration
	}

	if s.d.Runs != nil {
		run := storage.NewRunRecord(s.score, s.level, s.difficulty, time.Now().UTC())
		if err := s.d.Runs.RecordRun(ctx, run); err != nil {
			log.Warnf("failed to record run: %v", err)
		} else {
			log.Event("RunRecorded", SceneGameOver, fmt.Sprintf("id=%s score=%d level=%d", run.ID, run.Score, run.Level))
		}
	}
	return nil
}

// NewRecord reports whether this run set the high score
func (s *GameOver) NewRecord() bool {
	return s.newRecord
}

// Best returns the high score after this run
func (s *GameOver) Best() int {
	return s.best
}

func (s *GameOver) Update(dt time.Duration) {
	if s.flash > 0 {
		s.flash = max(0, s.flash-dt)
	}
}

func (s *GameOver) activate(i int) {
	switch i {
	case gameOverRetry:
		s.d.Manager.Start(SceneGame, nil)
	case gameOverMenu:
		s.d.Manager.Start(SceneMenu, nil)
	}
}

func (s *GameOver) HandleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		s.d.Manager.Start(SceneMenu, nil)
		return
	}
	if i := s.list.HandleKey(ev); i >= 0 {
		s.activate(i)
	}
}

func (s *GameOver) HandleMouse(ev *tcell.EventMouse) {
	if i := s.list.HandleMouse(ev); i >= 0 {
		s.activate(i)
	}
}

func (s *GameOver) Render(c *render.Canvas) {
	_, rows := c.Size()
	top := max(1, rows/2-7)

	c.CenterText(top, "GAME OVER", render.ColorEnemy)
	if s.newRecord {
		fg := render.ColorTitle
		if s.flash > 0 && int(s.flash/(100*time.Millisecond))%2 == 0 {
			fg = render.ColorFlash
		}
		c.CenterText(top+4, "NEW RECORD!", fg)
		c.CenterText(top+5, fmt.Sprintf("%d", s.score), fg)
	} else {
		c.CenterText(top+4, fmt.Sprintf("Scrap collected: %d", s.score), render.ColorText)
		c.CenterText(top+5, fmt.Sprintf("Record: %d", s.best), render.ColorEnergy)
	}
	c.CenterText(top+7, fmt.Sprintf("Level %d - %s", s.level, engine.Difficulty(s.difficulty).Label()), render.ColorDim)

	s.list.Render(c, top+10, 2)
}
