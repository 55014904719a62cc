package renderer

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// DashboardLogger paints a tcell grid of cells, one per tile, colored by
// completion fraction, instead of printing per-scanline log lines. It
// implements core.Logger by parsing driver's own "[INFO] tile %d: scanline
// %d/%d complete" messages (renderTile's Printf calls, unchanged) rather
// than requiring any new driver hook — the same pattern lixenwraith's
// Game draws its board from discrete cell updates, one SetContent call
// per changed cell.
type DashboardLogger struct {
	mu       sync.Mutex
	screen   tcell.Screen
	gridSize int
	progress []float64 // completion fraction per tile ID, len == gridSize*gridSize
}

// NewDashboardLogger opens a tcell screen and sizes the cell grid to
// gridSize x gridSize (the driver's own tile grid dimension).
func NewDashboardLogger(gridSize int) (*DashboardLogger, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()

	return &DashboardLogger{
		screen:   screen,
		gridSize: gridSize,
		progress: make([]float64, gridSize*gridSize),
	}, nil
}

// Printf implements core.Logger. Lines matching the tile/scanline
// progress format update that tile's cell; anything else is ignored (the
// dashboard has no text area to print warnings into).
func (d *DashboardLogger) Printf(format string, args ...interface{}) {
	if !strings.HasPrefix(format, "[INFO] tile ") || len(args) != 3 {
		return
	}
	tileID, ok1 := args[0].(int)
	done, ok2 := args[1].(int)
	total, ok3 := args[2].(int)
	if ok1 && ok2 && ok3 {
		d.update(tileID, done, total)
	}
}

func (d *DashboardLogger) update(tileID, done, total int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if tileID < 0 || tileID >= len(d.progress) || total <= 0 {
		return
	}
	d.progress[tileID] = float64(done) / float64(total)
	d.draw()
}

// draw repaints the full grid, each tile filling a cellW x cellH block of
// terminal cells so the grid spans the full screen regardless of size.
func (d *DashboardLogger) draw() {
	if d.screen == nil {
		return
	}
	width, height := d.screen.Size()
	cellW := max(width/d.gridSize, 1)
	cellH := max(height/d.gridSize, 1)

	for row := 0; row < d.gridSize; row++ {
		for col := 0; col < d.gridSize; col++ {
			tileID := row*d.gridSize + col
			style := tcell.StyleDefault.Background(completionColor(d.progress[tileID]))
			for dy := 0; dy < cellH; dy++ {
				for dx := 0; dx < cellW; dx++ {
					d.screen.SetContent(col*cellW+dx, row*cellH+dy, ' ', nil, style)
				}
			}
		}
	}
	d.screen.Show()
}

// completionColor grades a tile's completion fraction from dark red
// (not started) through orange and yellow to green (done).
func completionColor(fraction float64) tcell.Color {
	switch {
	case fraction >= 1.0:
		return tcell.ColorGreen
	case fraction >= 0.5:
		return tcell.ColorYellow
	case fraction > 0:
		return tcell.ColorOrange
	default:
		return tcell.ColorDarkRed
	}
}

// Close tears down the tcell screen, leaving the terminal in its prior state.
func (d *DashboardLogger) Close() {
	d.screen.Fini()
}
