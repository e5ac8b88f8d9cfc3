package sim

import "github.com/golangdaddy/autobahx/geom"

// Collides reports whether the player box overlaps any car box. Boxes that
// only share an edge do not collide.
func Collides(player geom.Rect, cars []geom.Rect) bool {
	for _, c := range cars {
		if player.Overlaps(c) {
			return true
		}
	}
	return false
}
