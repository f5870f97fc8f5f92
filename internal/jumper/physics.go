package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Integrate advances the player's vertical motion by one tick and clamps it
// to the ground. OnGround is only ever set here; only a jump clears it.
func Integrate(p *Player, gravity, groundY float64) {
	p.VelocityY += gravity
	p.Box = p.Box.Translate(0, p.VelocityY)

	if p.Box.Bottom() >= groundY {
		h := p.Box.Height()
		p.Box.Y2 = groundY
		p.Box.Y1 = groundY - h
		p.VelocityY = 0
		p.OnGround = true
	}
}

// HitsObstacle reports whether the player touches a ground obstacle.
// The obstacle's bottom edge is not compared: obstacles stand on the ground,
// so the player clears one only by keeping its bottom edge above the
// obstacle's top edge while they overlap horizontally.
func HitsObstacle(player, obstacle core.Box) bool {
	return player.Right() > obstacle.Left() &&
		player.Left() < obstacle.Right() &&
		player.Bottom() > obstacle.Top()
}

// collectCoins removes every coin overlapping the player and returns their IDs.
func collectCoins(rs *RunState) []EntityID {
	var collected []EntityID
	kept := rs.Coins[:0]
	for _, c := range rs.Coins {
		if rs.Player.Box.Overlaps(c.Box) {
			collected = append(collected, c.ID)
			continue
		}
		kept = append(kept, c)
	}
	rs.Coins = kept
	return collected
}
