package engine

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-survivor/logger"
)

// SceneData is the payload handed to a scene when it starts
type SceneData map[string]any

// Int returns an integer value or def when the key is absent or of another type
func (d SceneData) Int(key string, def int) int {
	if v, ok := d[key].(int); ok {
		return v
	}
	return def
}

// String returns a string value or def when the key is absent or of another type
func (d SceneData) String(key string, def string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return def
}

// Scene is one screen of the game
type Scene interface {
	// Init receives the data handed over by the previous scene
	Init(data SceneData)

	// Create builds the scene, an error aborts the transition
	Create() error

	// Update advances the scene by dt of game time
	Update(dt time.Duration)

	HandleKey(ev *tcell.EventKey)
	HandleMouse(ev *tcell.EventMouse)
}

// SceneLeaver is implemented by scenes that release resources when replaced
type SceneLeaver interface {
	Leave()
}

// SceneFactory creates a fresh scene instance
type SceneFactory func() Scene

type sceneTransition struct {
	name string
	data SceneData
}

// maxTransitionsPerUpdate bounds fallback chains when several scenes fail to create
const maxTransitionsPerUpdate = 4

// SceneManager owns the active scene and serializes every access to it
// Start only queues a transition, it is applied at the next Update or Do
type SceneManager struct {
	mu          sync.Mutex
	factories   map[string]SceneFactory
	current     Scene
	currentName string
	fallback    string
	log         *logger.Logger

	// Separate lock so scenes may call Start while mu is held
	pendingMu sync.Mutex
	pending   *sceneTransition
}

// NewSceneManager creates an empty manager
func NewSceneManager(log *logger.Logger) *SceneManager {
	if log == nil {
		log = logger.Discard()
	}
	return &SceneManager{
		factories: make(map[string]SceneFactory),
		log:       log,
	}
}

// Register adds a named scene factory
func (m *SceneManager) Register(name string, factory SceneFactory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factories[name] = factory
}

// SetFallback names the scene entered when another scene fails to create
func (m *SceneManager) SetFallback(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = name
}

// Start queues a transition to the named scene, replacing any queued one
func (m *SceneManager) Start(name string, data SceneData) {
	if data == nil {
		data = SceneData{}
	}
	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	m.pending = &sceneTransition{name: name, data: data}
}

// CurrentName returns the name of the active scene
func (m *SceneManager) CurrentName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyPending()
	return m.currentName
}

// Update applies queued transitions and advances the active scene
func (m *SceneManager) Update(dt time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applyPending()
	if m.current != nil {
		m.current.Update(dt)
	}
	m.applyPending()
}

// Do runs fn against the active scene while holding the manager lock
// fn is not called when no scene is active
func (m *SceneManager) Do(fn func(name string, scene Scene)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applyPending()
	if m.current != nil {
		fn(m.currentName, m.current)
	}
}

// HandleKey routes a key event to the active scene
func (m *SceneManager) HandleKey(ev *tcell.EventKey) {
	m.Do(func(_ string, s Scene) { s.HandleKey(ev) })
}

// HandleMouse routes a mouse event to the active scene
func (m *SceneManager) HandleMouse(ev *tcell.EventMouse) {
	m.Do(func(_ string, s Scene) { s.HandleMouse(ev) })
}

// applyPending performs queued transitions, mu must be held
func (m *SceneManager) applyPending() {
	for i := 0; i < maxTransitionsPerUpdate; i++ {
		m.pendingMu.Lock()
		next := m.pending
		m.pending = nil
		m.pendingMu.Unlock()

		if next == nil {
			return
		}

		factory, ok := m.factories[next.name]
		if !ok {
			m.log.Errorf("unknown scene %q, transition ignored", next.name)
			continue
		}

		scene := factory()
		scene.Init(next.data)
		if err := scene.Create(); err != nil {
			m.log.Errorf("scene %q failed to start: %v", next.name, err)
			if m.fallback != "" && next.name != m.fallback {
				m.Start(m.fallback, nil)
			}
			continue
		}

		if leaver, ok := m.current.(SceneLeaver); ok {
			leaver.Leave()
		}
		m.log.Infof("scene %s -> %s", m.currentName, next.name)
		m.current = scene
		m.currentName = next.name
	}
}
