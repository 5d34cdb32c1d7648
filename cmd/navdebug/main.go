// Command navdebug is a terminal visualizer for one chunk's flow field
// and LOS field, grounded on the teacher's render/renderer/flowfield_debug.go
// (arrow glyphs per direction, a near/far color gradient) but talking to
// tcell directly rather than through an engine-owned render buffer,
// since that abstraction belongs to the rendering surface this
// navigation core explicitly doesn't own.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/nav"
	"github.com/lixenwraith/navcore/parameter"
	"github.com/lixenwraith/navcore/ports"
)

var flowDirArrows = [9]rune{
	'·', '↑', '↗', '→', '↘', '↓', '↙', '←', '↖',
}

// demoMap is a tiny static MapQuery: every tile is a 1x1 world unit
// square, column index increasing world X in the negative direction
// per spec §9's preserved sign convention.
type demoMap struct{}

func (demoMap) TileBounds(chunk core.ChunkCoord, tile core.Coord) (x, z float64) {
	const tileDim = 1.0
	xOffset := -(float64(chunk.C) * float64(parameter.FieldResC) * tileDim)
	zOffset := float64(chunk.R) * float64(parameter.FieldResR) * tileDim
	return xOffset - float64(tile.C)*tileDim, zOffset + float64(tile.R)*tileDim
}

func (demoMap) ChunkBounds(chunk core.ChunkCoord) core.Area {
	minX, minZ := demoMap{}.TileBounds(chunk, core.Coord{R: 0, C: 0})
	maxX, maxZ := demoMap{}.TileBounds(chunk, core.Coord{R: parameter.FieldResR - 1, C: parameter.FieldResC - 1})
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	return core.Area{MinX: minX, MinZ: minZ, MaxX: maxX, MaxZ: maxZ}
}

func (demoMap) Resolution() (rows, cols int) {
	return parameter.FieldResR, parameter.FieldResC
}

func buildDemoChunk(wallColumn int, wallRowLo, wallRowHi int) *nav.NavChunk {
	chunk := nav.NewNavChunk()
	if wallColumn >= 0 {
		for r := wallRowLo; r <= wallRowHi && r < parameter.FieldResR; r++ {
			chunk.CostBase[r][wallColumn] = parameter.CostImpassable
		}
	}
	return chunk
}

func main() {
	targetR := flag.Int("target-r", 4, "target tile row")
	targetC := flag.Int("target-c", 4, "target tile col")
	wallCol := flag.Int("wall-col", -1, "column index of a vertical wall, -1 for none")
	wallLo := flag.Int("wall-lo", 0, "wall start row")
	wallHi := flag.Int("wall-hi", 4, "wall end row")
	view := flag.Int("view", 8, "visible RxC window from the origin corner")
	flag.Parse()

	chunk := buildDemoChunk(*wallCol, *wallLo, *wallHi)
	chunkCoord := core.ChunkCoord{R: 0, C: 0}
	targetTile := core.Coord{R: uint8(*targetR), C: uint8(*targetC)}

	flow := nav.FlowFieldInit(chunkCoord)
	integ := &nav.IntegrationField{}
	pq := nav.NewPriorityQueue(parameter.QueueCapacity)
	nav.BuildIntegration(chunk, []core.Coord{targetTile}, -1, 0, false, integ, pq)
	nav.DeriveFlow(chunk, integ, -1, 0, flow)

	mq := demoMap{}
	targetX, targetZ := mq.TileBounds(chunkCoord, targetTile)
	los := nav.LOSFieldCreate(chunk, mq, chunkCoord, targetTile, targetX, targetZ, true, nil, pq)

	if err := run(chunk, flow, integ, los, *view); err != nil {
		fmt.Fprintln(os.Stderr, "navdebug:", err)
		os.Exit(1)
	}
}

func run(chunk *nav.NavChunk, flow *nav.FlowField, integ *nav.IntegrationField, los *nav.LOSField, view int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	maxDist := findMaxDistance(integ, view)

	draw(screen, chunk, flow, integ, los, view, maxDist)
	screen.Show()

	for {
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, chunk, flow, integ, los, view, maxDist)
			screen.Show()
		}
	}
}

func findMaxDistance(integ *nav.IntegrationField, view int) float32 {
	var max float32
	for r := 0; r < view; r++ {
		for c := 0; c < view; c++ {
			d := integ.Cost[r][c]
			if d < nav.CostInfinite && d > max {
				max = d
			}
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}

func draw(screen tcell.Screen, chunk *nav.NavChunk, flow *nav.FlowField, integ *nav.IntegrationField, los *nav.LOSField, view int, maxDist float32) {
	screen.Clear()
	gap := view + 3

	for r := 0; r < view; r++ {
		for c := 0; c < view; c++ {
			drawFlowCell(screen, chunk, flow, integ, r, c, maxDist)
			drawLOSCell(screen, los, r, c, gap)
		}
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	emitString(screen, 0, view+1, style, "flow field")
	emitString(screen, gap, view+1, style, "los field")
}

func drawFlowCell(screen tcell.Screen, chunk *nav.NavChunk, flow *nav.FlowField, integ *nav.IntegrationField, r, c int, maxDist float32) {
	if chunk.CostBase[r][c] == parameter.CostImpassable {
		screen.SetContent(c, r, '#', nil, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
		return
	}

	dir := flow.Dir[r][c]
	dist := integ.Cost[r][c]

	var glyph rune
	var style tcell.Style

	switch {
	case dist == 0:
		glyph = '●'
		style = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case dist >= nav.CostInfinite:
		glyph = '·'
		style = tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		glyph = flowDirArrows[dir]
		t := 1.0 - float64(dist)/float64(maxDist)
		style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(40+t*60), int32(80+t*175), int32(120+t*135),
		))
	}
	screen.SetContent(c, r, glyph, nil, style)
}

func drawLOSCell(screen tcell.Screen, los *nav.LOSField, r, c, colOffset int) {
	cell := los.Field[r][c]
	var glyph rune
	var style tcell.Style

	switch {
	case cell.WavefrontBlocked:
		glyph = '▓'
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	case cell.Visible:
		glyph = '░'
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		glyph = ' '
		style = tcell.StyleDefault
	}
	screen.SetContent(colOffset+c, r, glyph, nil, style)
}

func emitString(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

var _ ports.MapQuery = demoMap{}
