package renderer

// Tile is a rectangular pixel region of the image, in top-left-origin
// framebuffer coordinates: [X0,X1) x [Y0,Y1).
type Tile struct {
	ID             int
	X0, Y0, X1, Y1 int
}

// NewTileGrid splits a width x height image into a gridSize x gridSize
// grid of tiles (spec.md §4.8's default T=8), returned in row-then-column
// order with the top tile-row first, matching the driver's processing
// order. Grounded on teacher progressive.go's NewTileGrid, generalized
// from a fixed pixel tileSize to a fixed grid dimension per spec.md's
// "T×T grid" phrasing.
func NewTileGrid(width, height, gridSize int) []Tile {
	if gridSize <= 0 {
		gridSize = 8
	}

	tileWidth := (width + gridSize - 1) / gridSize
	tileHeight := (height + gridSize - 1) / gridSize

	var tiles []Tile
	id := 0
	for ty := 0; ty*tileHeight < height; ty++ {
		y0 := ty * tileHeight
		y1 := min(y0+tileHeight, height)
		for tx := 0; tx*tileWidth < width; tx++ {
			x0 := tx * tileWidth
			x1 := min(x0+tileWidth, width)
			tiles = append(tiles, Tile{ID: id, X0: x0, Y0: y0, X1: x1, Y1: y1})
			id++
		}
	}
	return tiles
}
