package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(300, 540, 30, 60)

	assert.Equal(t, 300, r.Left())
	assert.Equal(t, 330, r.Right())
	assert.Equal(t, 540, r.Top())
	assert.Equal(t, 600, r.Bottom())
}

func TestRectOverlaps(t *testing.T) {
	player := NewRect(100, 100, 30, 60)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "identical", other: player, want: true},
		{name: "touching right edge", other: NewRect(130, 100, 30, 60), want: false},
		{name: "touching left edge", other: NewRect(70, 100, 30, 60), want: false},
		{name: "touching bottom edge", other: NewRect(100, 160, 30, 60), want: false},
		{name: "touching top edge", other: NewRect(100, 40, 30, 60), want: false},
		{name: "one unit overlap right", other: NewRect(129, 100, 30, 60), want: true},
		{name: "one unit overlap top", other: NewRect(100, 41, 30, 60), want: true},
		{name: "corner touch", other: NewRect(130, 160, 30, 60), want: false},
		{name: "far away", other: NewRect(500, 500, 30, 60), want: false},
		{name: "contained", other: NewRect(105, 110, 5, 5), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, player.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(player), "overlap must be symmetric")
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 10, Clamp(Clamp(42, 0, 10), 0, 10))
}
