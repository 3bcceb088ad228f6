package render_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/termview/colorspace"
	"go.jacobcolvin.com/termview/raster"
	"go.jacobcolvin.com/termview/render"
)

func TestSequences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\x1b[?25l\x1b[2J", render.SessionStart)
	assert.Equal(t, "\x1b[40m\x1b[2J", render.FrameStart)
	assert.Equal(t, "\n\x1b[0m\x1b[?25h", render.SessionEnd)
	assert.Equal(t, "\xe2\x96\x84", render.HalfBlock)
}

func TestFrame(t *testing.T) {
	t.Parallel()

	lin := func(v uint8) float32 { return float32(colorspace.SRGBToLinear(v)) }

	tcs := map[string]struct {
		img  func() *raster.Image
		want string
	}{
		"single cell": {
			img: func() *raster.Image {
				img := raster.New(1, 2)
				img.Set(0, 0, lin(10), lin(20), lin(30))
				img.Set(0, 1, lin(200), lin(100), lin(0))

				return img
			},
			want: "\x1b[40m\x1b[2J" +
				"\x1b[1H" +
				"\x1b[38;2;200;100;0m\x1b[48;2;10;20;30m▄",
		},
		"two rows two columns": {
			img: func() *raster.Image {
				img := raster.New(2, 4)
				img.Set(1, 0, 1, 1, 1)
				img.Set(0, 3, 1, 0, 0)

				return img
			},
			want: "\x1b[40m\x1b[2J" +
				"\x1b[1H" +
				"\x1b[38;2;0;0;0m\x1b[48;2;0;0;0m▄" +
				"\x1b[38;2;0;0;0m\x1b[48;2;255;255;255m▄" +
				"\x1b[2H" +
				"\x1b[38;2;255;0;0m\x1b[48;2;0;0;0m▄" +
				"\x1b[38;2;0;0;0m\x1b[48;2;0;0;0m▄",
		},
		"out of range values are clamped": {
			img: func() *raster.Image {
				img := raster.New(1, 2)
				img.Set(0, 0, -0.1, 1.3, 0.5)
				img.Set(0, 1, 2, -5, 0)

				return img
			},
			want: "\x1b[40m\x1b[2J" +
				"\x1b[1H" +
				"\x1b[38;2;255;0;0m\x1b[48;2;0;255;188m▄",
		},
		"odd trailing row is ignored": {
			img: func() *raster.Image {
				img := raster.New(1, 3)
				img.Set(0, 2, 1, 1, 1)

				return img
			},
			want: "\x1b[40m\x1b[2J" +
				"\x1b[1H" +
				"\x1b[38;2;0;0;0m\x1b[48;2;0;0;0m▄",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var r render.Renderer

			assert.Equal(t, tc.want, string(r.Frame(tc.img())))
		})
	}
}

func TestFrameReusesBuffer(t *testing.T) {
	t.Parallel()

	var r render.Renderer

	img := raster.New(80, 96)

	first := string(r.Frame(img))
	second := string(r.Frame(img))
	assert.Equal(t, first, second)

	require.True(t, utf8.ValidString(second))
	assert.Equal(t, 80*48, strings.Count(second, render.HalfBlock))
	assert.Equal(t, 48, strings.Count(second, "H\x1b[38;2;"))
	assert.True(t, strings.HasSuffix(second, "\x1b[48H"+strings.Repeat("\x1b[38;2;0;0;0m\x1b[48;2;0;0;0m▄", 80)))
}
