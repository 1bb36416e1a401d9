// Package arena holds the pieces the paddle games share on top of the
// collision engine: bounce reactions, drawing bodies and overlays.
package arena

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/paddles/internal/collision"
	"github.com/vovakirdan/paddles/internal/core"
)

// BounceAxis returns which axis body self should reflect on after touching
// other in contact c. It asks the engine first; when the penetration
// magnitudes tie it falls back to the correction restitution applied. The result is (1,0), (0,1), or (0,0) for an exact corner hit.
func BounceAxis[ID comparable](e *collision.Engine[ID], c collision.Contact, self int) collision.Vec2 {
	other, ok := c.Other(self)
	if !ok {
		return collision.Zero
	}
	if axis := e.SidesTouched(self, other); axis != collision.Zero {
		return axis
	}
	switch {
	case c.Applied.X != 0:
		return collision.V(1, 0)
	case c.Applied.Y != 0:
		return collision.V(0, 1)
	}
	return collision.Zero
}

// Reflect points the velocity components selected by axis away from the
// point from. Components with axis 0 are left alone. A corner hit, where axis
// is zero, reflects both components.
func Reflect(v, axis, pos, from collision.Vec2) collision.Vec2 {
	if axis == collision.Zero {
		axis = collision.One
	}
	if axis.X != 0 {
		v.X = away(v.X, pos.X-from.X)
	}
	if axis.Y != 0 {
		v.Y = away(v.Y, pos.Y-from.Y)
	}
	return v
}

func away(v, d float64) float64 {
	if d == 0 {
		return -v
	}
	return math.Copysign(math.Abs(v), d)
}

// ClampSpeed limits each component of v to max in magnitude.
func ClampSpeed(v collision.Vec2, max float64) collision.Vec2 {
	return collision.V(
		core.ClampF(v.X, -max, max),
		core.ClampF(v.Y, -max, max),
	)
}

// BodyRect returns the cells a body covers.
func BodyRect[ID comparable](b collision.Body[ID]) core.Rect {
	return core.RectFromBox(b.Center.X, b.Center.Y, b.HalfExtent.X, b.HalfExtent.Y)
}

// DrawBody fills the cells a body covers.
func DrawBody[ID comparable](dst *core.Screen, b collision.Body[ID], r rune, c core.Color) {
	dst.DrawRectColor(BodyRect(b), r, c)
}

// DrawMessage draws a boxed two-line message in the middle of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-utf8.RuneCountInString(subtitle))/2, box.Y+3, subtitle)
}
