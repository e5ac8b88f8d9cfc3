package sim

import (
	"testing"

	"github.com/golangdaddy/autobahx/geom"
	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	player := geom.NewRect(385, 540, 30, 60)

	tests := []struct {
		name string
		cars []geom.Rect
		want bool
	}{
		{"no traffic", nil, false},
		{"far away", []geom.Rect{geom.NewRect(300, -200, 30, 60)}, false},
		{"touching above", []geom.Rect{geom.NewRect(385, 480, 30, 60)}, false},
		{"touching left", []geom.Rect{geom.NewRect(355, 540, 30, 60)}, false},
		{"one pixel deep", []geom.Rect{geom.NewRect(385, 481, 30, 60)}, true},
		{"partial lane overlap", []geom.Rect{geom.NewRect(380, 500, 30, 60)}, true},
		{
			"any car is enough",
			[]geom.Rect{
				geom.NewRect(300, 0, 30, 60),
				geom.NewRect(460, 100, 30, 60),
				geom.NewRect(400, 560, 30, 60),
			},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(player, tt.cars))
		})
	}
}
