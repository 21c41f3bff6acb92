package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTilesCoverEveryPixelExactlyOnce(t *testing.T) {
	w, h, size := 100, 73, 32
	tiles := Tiles(w, h, size)

	covered := make([][]bool, h)
	for y := range covered {
		covered[y] = make([]bool, w)
	}
	for _, tile := range tiles {
		for y := tile.Y0; y < tile.Y1; y++ {
			for x := tile.X0; x < tile.X1; x++ {
				assert.False(t, covered[y][x], "pixel (%d,%d) covered twice", x, y)
				covered[y][x] = true
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.True(t, covered[y][x], "pixel (%d,%d) never covered", x, y)
		}
	}
}

func TestTilesRespectBounds(t *testing.T) {
	tiles := Tiles(10, 10, 32)
	assert.Len(t, tiles, 1)
	assert.Equal(t, Tile{X0: 0, Y0: 0, X1: 10, Y1: 10}, tiles[0])
}
