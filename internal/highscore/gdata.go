package highscore

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// Storage keys for the gdata backend.
const (
	gdataObject   = "highscores"
	gdataProperty = "top5"
)

// GdataStore keeps the text record in the per-user application data
// directory managed by gdata.
type GdataStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// OpenGdata opens (creating if needed) the gdata storage for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open gdata storage: %w", err)
	}
	return NewGdataStore(m), nil
}

// NewGdataStore wraps an existing manager.
func NewGdataStore(m *gdata.Manager) *GdataStore {
	return &GdataStore{manager: m}
}

// Load implements Store.
func (g *GdataStore) Load() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.load()
}

func (g *GdataStore) load() []int {
	if !g.manager.ObjectPropExists(gdataObject, gdataProperty) {
		return []int{}
	}
	data, err := g.manager.LoadObjectProp(gdataObject, gdataProperty)
	if err != nil {
		return []int{}
	}
	scores, err := Decode(data)
	if err != nil {
		return []int{}
	}
	return scores
}

// Save implements Store.
func (g *GdataStore) Save(scores []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.save(scores)
}

// Update implements Updater.
func (g *GdataStore) Update(fn func(scores []int) []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.save(fn(g.load()))
}

func (g *GdataStore) save(scores []int) error {
	if err := g.manager.SaveObjectProp(gdataObject, gdataProperty, Encode(scores)); err != nil {
		return fmt.Errorf("highscore: cannot save to gdata: %w", err)
	}
	return nil
}
