package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Coin placement patterns used by the anchored policy.
const (
	patternAbove = iota
	patternFrontHigh
	patternFrontLow
	patternCount
)

// Spawner creates, moves and removes obstacles, coins and clouds.
// All randomness is drawn from one RNG so a seed reproduces a run.
type Spawner struct {
	rng *rand.Rand
	cfg *config.JumperConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg *config.JumperConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// between returns a uniform integer in [lo, hi].
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// chance reports true with probability p.
func (s *Spawner) chance(p float64) bool {
	return s.rng.Float64() < p
}

// SpawnObstacle places a new obstacle at the right edge, standing on the ground.
// Under the anchored policy it may also place a coin relative to it.
func (s *Spawner) SpawnObstacle(rs *RunState) {
	ob := s.cfg.Obstacles
	width := s.between(ob.MinWidth, ob.MinWidth+ob.WidthPerLevel*rs.DifficultyLevel)
	height := s.between(ob.MinHeight, ob.MaxHeight)

	groundY := s.cfg.Viewport.GroundY
	rs.Obstacle = &Obstacle{
		ID:  rs.allocID(),
		Box: core.NewBox(s.cfg.Viewport.Width, groundY-float64(height), float64(width), float64(height)),
	}

	if s.cfg.Coins.Policy == config.CoinPolicyAnchored && s.chance(s.cfg.Coins.AnchoredProbability) {
		s.spawnAnchoredCoin(rs, rs.Obstacle.Box)
	}
}

// SpawnClouds replaces the cloud set with freshly placed clouds.
func (s *Spawner) SpawnClouds(rs *RunState) {
	rs.Clouds = rs.Clouds[:0]
	for i := 0; i < s.cfg.Clouds.Count; i++ {
		x := float64(s.between(0, int(s.cfg.Viewport.Width)))
		rs.Clouds = append(rs.Clouds, Cloud{ID: rs.allocID(), Box: s.cloudBox(x)})
	}
}

func (s *Spawner) cloudBox(x float64) core.Box {
	cl := s.cfg.Clouds
	y := s.between(cl.MinY, cl.MaxY)
	w := s.between(cl.MinWidth, cl.MaxWidth)
	h := s.between(cl.MinHeight, cl.MaxHeight)
	return core.NewBox(x, float64(y), float64(w), float64(h))
}

// SpawnTimedCoin is called once per elapsed in-game second. It is a no-op
// unless the timed policy is active.
func (s *Spawner) SpawnTimedCoin(rs *RunState) bool {
	c := s.cfg.Coins
	if c.Policy != config.CoinPolicyTimed || !s.chance(c.SpawnProbability) {
		return false
	}
	rise := s.between(c.MinRise, c.MaxRise)
	top := s.cfg.Viewport.GroundY - float64(rise)
	return s.addCoin(rs, core.NewBox(s.cfg.Viewport.Width, top, c.Size, c.Size))
}

func (s *Spawner) spawnAnchoredCoin(rs *RunState, ob core.Box) bool {
	size := s.cfg.Coins.Size
	groundY := s.cfg.Viewport.GroundY

	var x, y float64
	switch s.rng.Intn(patternCount) {
	case patternAbove:
		x = ob.Left() + ob.Width()/2 - size/2
		y = ob.Top() - size - float64(s.between(40, 70))
	case patternFrontHigh:
		x = ob.Left() - float64(s.between(90, 160))
		y = groundY - float64(s.between(140, 200))
	default:
		x = ob.Left() - float64(s.between(70, 130))
		y = groundY - size - 20
	}
	return s.addCoin(rs, core.NewBox(x, y, size, size))
}

// addCoin appends a coin unless the live limit is reached.
func (s *Spawner) addCoin(rs *RunState, box core.Box) bool {
	if len(rs.Coins) >= s.cfg.Coins.Max {
		return false
	}
	rs.Coins = append(rs.Coins, Coin{ID: rs.allocID(), Box: box})
	return true
}

// Advance moves every entity by the current speeds. An obstacle that left
// the screen is replaced in the same tick, coins that left are dropped and
// clouds that left are recycled at the right edge.
func (s *Spawner) Advance(rs *RunState) {
	if rs.Obstacle != nil {
		rs.Obstacle.Box = rs.Obstacle.Box.Translate(rs.Speeds.Obstacle, 0)
	}

	kept := rs.Coins[:0]
	for _, c := range rs.Coins {
		c.Box = c.Box.Translate(rs.Speeds.Coin, 0)
		if c.Box.Right() < 0 {
			continue
		}
		kept = append(kept, c)
	}
	rs.Coins = kept

	// Replace after coins moved so an anchored coin starts where it was placed.
	if rs.Obstacle != nil && rs.Obstacle.Box.Right() < 0 {
		rs.Obstacle = nil
		s.SpawnObstacle(rs)
	}

	for i := range rs.Clouds {
		cl := &rs.Clouds[i]
		cl.Box = cl.Box.Translate(rs.Speeds.Cloud, 0)
		if cl.Box.Right() < 0 {
			cl.Box = s.cloudBox(s.cfg.Viewport.Width)
		}
	}
}
