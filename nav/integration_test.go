package nav

import (
	"testing"

	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/parameter"
)

func TestBuildIntegrationOpenFieldMatchesManhattanDistance(t *testing.T) {
	chunk := NewNavChunk()
	integ := &IntegrationField{}
	pq := NewPriorityQueue(8 * 8)

	target := core.Coord{R: 4, C: 4}
	BuildIntegration(chunk, []core.Coord{target}, -1, 0, false, integ, pq)

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			want := float32(absInt(r-4) + absInt(c-4))
			if got := integ.Cost[r][c]; got != want {
				t.Errorf("Cost[%d][%d] = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestBuildIntegrationIsIdempotent(t *testing.T) {
	chunk := NewNavChunk()
	chunk.CostBase[2][3] = parameter.CostImpassable

	integA := &IntegrationField{}
	integB := &IntegrationField{}
	pq := NewPriorityQueue(64)

	seeds := []core.Coord{{R: 4, C: 4}}
	BuildIntegration(chunk, seeds, -1, 0, false, integA, pq)
	BuildIntegration(chunk, seeds, -1, 0, false, integB, pq)

	if integA.Cost != integB.Cost {
		t.Fatalf("BuildIntegration is not idempotent for identical inputs")
	}
}

func TestBuildIntegrationAllImpassableStaysInfinite(t *testing.T) {
	chunk := NewNavChunk()
	for r := 0; r < parameter.FieldResR; r++ {
		for c := 0; c < parameter.FieldResC; c++ {
			chunk.CostBase[r][c] = parameter.CostImpassable
		}
	}
	integ := &IntegrationField{}
	pq := NewPriorityQueue(64)
	BuildIntegration(chunk, []core.Coord{{R: 0, C: 0}}, -1, 0, false, integ, pq)

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if r == 0 && c == 0 {
				continue // the seed itself always starts at 0
			}
			if integ.Cost[r][c] < CostInfinite {
				t.Fatalf("Cost[%d][%d] should remain infinite in an all-impassable chunk", r, c)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
