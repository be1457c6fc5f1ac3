package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/frost"
)

// pointerReader turns ebiten mouse and touch state into frost pointer
// events. The mouse and the first active touch drive the same pointer.
type pointerReader struct {
	lastX, lastY int
	seen         bool

	touchID  ebiten.TouchID
	touching bool
	touchX   int
	touchY   int
	touchBuf []ebiten.TouchID
}

// read queues this frame's pointer events on d, in the order they happened.
func (r *pointerReader) read(d *frost.Driver) {
	r.readMouse(d)
	r.readTouch(d)
}

func (r *pointerReader) readMouse(d *frost.Driver) {
	mx, my := ebiten.CursorPosition()
	if !r.seen || mx != r.lastX || my != r.lastY {
		r.seen = true
		r.lastX, r.lastY = mx, my
		d.Input(frost.PointerEvent{Type: frost.EventPointerMove, X: float64(mx), Y: float64(my)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.Input(frost.PointerEvent{Type: frost.EventPointerDown, X: float64(mx), Y: float64(my)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		d.Input(frost.PointerEvent{Type: frost.EventPointerUp, X: float64(mx), Y: float64(my)})
	}
}

func (r *pointerReader) readTouch(d *frost.Driver) {
	if r.touching {
		if inpututil.IsTouchJustReleased(r.touchID) {
			r.touching = false
			d.Input(frost.PointerEvent{Type: frost.EventPointerUp, X: float64(r.touchX), Y: float64(r.touchY)})
			return
		}
		tx, ty := ebiten.TouchPosition(r.touchID)
		if tx != r.touchX || ty != r.touchY {
			r.touchX, r.touchY = tx, ty
			d.Input(frost.PointerEvent{Type: frost.EventPointerMove, X: float64(tx), Y: float64(ty)})
		}
		return
	}

	r.touchBuf = inpututil.AppendJustPressedTouchIDs(r.touchBuf[:0])
	if len(r.touchBuf) == 0 {
		return
	}
	r.touchID = r.touchBuf[0]
	r.touching = true
	r.touchX, r.touchY = ebiten.TouchPosition(r.touchID)
	x, y := float64(r.touchX), float64(r.touchY)
	d.Input(frost.PointerEvent{Type: frost.EventPointerMove, X: x, Y: y})
	d.Input(frost.PointerEvent{Type: frost.EventPointerDown, X: x, Y: y})
}
