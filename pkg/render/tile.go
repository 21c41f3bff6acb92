package render

// Tile is a rectangular region of the image, the unit of work the worker
// pool dispatches per pass.
type Tile struct {
	X0, Y0, X1, Y1 int
}

// Width returns the tile's pixel width.
func (t Tile) Width() int { return t.X1 - t.X0 }

// Height returns the tile's pixel height.
func (t Tile) Height() int { return t.Y1 - t.Y0 }

// Tiles partitions a w x h image into tileSize x tileSize tiles (the last
// row/column of tiles may be smaller), enumerated in row-major scan order.
func Tiles(w, h, tileSize int) []Tile {
	var tiles []Tile
	for y := 0; y < h; y += tileSize {
		for x := 0; x < w; x += tileSize {
			x1 := min(x+tileSize, w)
			y1 := min(y+tileSize, h)
			tiles = append(tiles, Tile{X0: x, Y0: y, X1: x1, Y1: y1})
		}
	}
	return tiles
}
