package dotcanvas

import "fmt"

// RGB is an opaque 8-bit-per-channel color. Sources with alpha must be
// composited onto a background before reaching this package.
type RGB struct {
	R, G, B uint8
}

// Capability is the tier of color support a terminal exposes.
type Capability int

const (
	// Monochrome terminals get bare braille characters, no escapes.
	Monochrome Capability = iota
	// ANSI16 terminals support the 16 base colors.
	ANSI16
	// ANSI256 terminals support the xterm 256-color palette.
	ANSI256
	// TrueColor terminals accept 24-bit color escapes.
	TrueColor
)

func (c Capability) String() string {
	switch c {
	case Monochrome:
		return "monochrome"
	case ANSI16:
		return "ansi16"
	case ANSI256:
		return "ansi256"
	case TrueColor:
		return "truecolor"
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

// Reset restores the terminal's default colors.
const Reset = "\x1b[0m"

// cubeLevels are the channel values of the xterm 6x6x6 color cube
// (palette indices 16..231).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func sqDist(c RGB, r, g, b uint8) int {
	dr := int(c.R) - int(r)
	dg := int(c.G) - int(g)
	db := int(c.B) - int(b)
	return dr*dr + dg*dg + db*db
}

// ANSI256 returns the xterm-256 palette index nearest to c by squared
// euclidean distance in RGB space. Only the 6x6x6 cube (16..231) and the
// grayscale ramp (232..255) are searched; the 16 base colors vary between
// terminal themes and are never produced. On equal distance the cube wins
// over the ramp, and within each the lowest index wins.
func (c RGB) ANSI256() uint8 {
	best := 16
	bestDist := sqDist(c, cubeLevels[0], cubeLevels[0], cubeLevels[0])
	idx := 16
	for _, r := range cubeLevels {
		for _, g := range cubeLevels {
			for _, b := range cubeLevels {
				if d := sqDist(c, r, g, b); d < bestDist {
					best, bestDist = idx, d
				}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		if d := sqDist(c, v, v, v); d < bestDist {
			best, bestDist = 232+i, d
		}
	}
	return uint8(best)
}

// ANSI16 returns the base-16 color code (0..15) nearest to c. Each channel
// at or above the midpoint contributes its hue bit; the bright variant is
// chosen when the strongest channel exceeds 192.
func (c RGB) ANSI16() uint8 {
	var code uint8
	if c.R >= 128 {
		code |= 1
	}
	if c.G >= 128 {
		code |= 2
	}
	if c.B >= 128 {
		code |= 4
	}
	max := c.R
	if c.G > max {
		max = c.G
	}
	if c.B > max {
		max = c.B
	}
	if max > 192 && code != 0 {
		code |= 8
	}
	return code
}

// Foreground returns the escape sequence that sets c as the foreground
// color at the given capability tier. Monochrome yields an empty string.
func (c RGB) Foreground(tier Capability) string {
	switch tier {
	case TrueColor:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case ANSI256:
		return fmt.Sprintf("\x1b[38;5;%dm", c.ANSI256())
	case ANSI16:
		code := c.ANSI16()
		if code < 8 {
			return fmt.Sprintf("\x1b[3%dm", code)
		}
		return fmt.Sprintf("\x1b[9%dm", code-8)
	default:
		return ""
	}
}

// Background returns the escape sequence that sets c as the background
// color at the given capability tier. Monochrome yields an empty string.
func (c RGB) Background(tier Capability) string {
	switch tier {
	case TrueColor:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
	case ANSI256:
		return fmt.Sprintf("\x1b[48;5;%dm", c.ANSI256())
	case ANSI16:
		code := c.ANSI16()
		if code < 8 {
			return fmt.Sprintf("\x1b[4%dm", code)
		}
		return fmt.Sprintf("\x1b[10%dm", code-8)
	default:
		return ""
	}
}
