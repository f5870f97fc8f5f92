package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	CoinChar     = '●'
	CloudChar    = '░'
	GroundChar   = '═'
)

// cellRect maps a logical box onto screen cells.
// Any non-empty box covers at least one cell.
func cellRect(b core.Box, sx, sy float64) core.Rect {
	x1 := int(math.Floor(b.X1 * sx))
	y1 := int(math.Floor(b.Y1 * sy))
	x2 := int(math.Ceil(b.X2 * sx))
	y2 := int(math.Ceil(b.Y2 * sy))
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}
	return core.NewRect(x1, y1, x2-x1, y2-y1)
}

// DrawField renders the playfield of snap onto dst, scaling the logical
// viewport to the screen size.
func DrawField(dst *core.Screen, snap jumper.Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}

	sx := float64(dst.Width()) / snap.Width
	sy := float64(dst.Height()) / snap.Height

	for _, c := range snap.Clouds {
		dst.DrawRect(cellRect(c.Box, sx, sy), CloudChar, core.ColorWhite)
	}

	groundRow := int(math.Ceil(snap.GroundY * sy))
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGreen)

	if snap.Obstacle != nil {
		dst.DrawRect(cellRect(*snap.Obstacle, sx, sy), ObstacleChar, core.ColorRed)
	}
	for _, c := range snap.Coins {
		dst.DrawRect(cellRect(c.Box, sx, sy), CoinChar, core.ColorBrightYellow)
	}
	dst.DrawRect(cellRect(snap.Player, sx, sy), PlayerChar, core.ColorBrightBlue)

	drawHUD(dst, snap)
}

// drawHUD draws the score line and the transient notice.
func drawHUD(dst *core.Screen, snap jumper.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)

	level := fmt.Sprintf("Level: %d", snap.DifficultyLevel)
	dst.DrawText(dst.Width()-len(level)-1, 0, level, core.ColorGray)

	if snap.Notice != nil {
		dst.DrawTextCentered(2, snap.Notice.Text, core.ColorOrange)
	}
}
