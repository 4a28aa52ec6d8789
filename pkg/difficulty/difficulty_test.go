package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingZeroBits(t *testing.T) {
	tests := []struct {
		name     string
		digest   []byte
		bitWidth int
		want     int
	}{
		{"0b00010000", []byte{0x10}, 8, 3},
		{"all zero 8 bits", []byte{0x00}, 8, 8},
		{"leading one", []byte{0x80}, 8, 0},
		{"0xff", []byte{0xff}, 8, 0},
		{"0x01", []byte{0x01}, 8, 7},
		{"zero byte then 0x1f", []byte{0x00, 0x1f}, 16, 8 + 3},
		{"spans bytes", []byte{0x00, 0x00, 0x40, 0xff}, 32, 17},
		{"all zero 32 bits", []byte{0x00, 0x00, 0x00, 0x00}, 32, 32},
		{"zero width", []byte{0x00}, 0, 0},
		{"width narrower than digest", []byte{0x00, 0x80}, 4, 4},
		{"width not byte aligned", []byte{0x00, 0x01}, 12, 12},
		{"short digest padded", []byte{0x00}, 16, 16},
		{"nibble boundary", []byte{0x08}, 8, 4},
		{"non nibble aligned", []byte{0x00, 0x20}, 16, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LeadingZeroBits(tt.digest, tt.bitWidth)
			assert.Equal(t, tt.want, got, "LeadingZeroBits(% X, %d)", tt.digest, tt.bitWidth)
		})
	}
}

func TestMeetsTarget(t *testing.T) {
	for target := DifficultyMin; target <= DifficultyMax; target++ {
		for count := 0; count <= 2*DifficultyMax; count++ {
			assert.Equal(t, count >= target, MeetsTarget(count, target), "count=%d target=%d", count, target)
		}
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		target int
		want   bool
	}{
		{0, false},
		{1, true},
		{8, true},
		{16, true},
		{17, false},
		{-3, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InRange(tt.target), "InRange(%d)", tt.target)
	}
}
