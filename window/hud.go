package window

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/phanxgames/frost"
)

// hudRefresh is how often, in seconds, the HUD text is rebuilt.
const hudRefresh = 0.5

// hud is the debug overlay: frame rates, live parameters and process memory.
// The text is rebuilt every hudRefresh seconds and drawn from a cached image.
type hud struct {
	img     *ebiten.Image
	elapsed float64
	proc    *process.Process
	rss     uint64
	text    string
	status  string
}

func newHUD() *hud {
	h := &hud{img: ebiten.NewImage(260, 150), elapsed: hudRefresh}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		h.proc = p
	} else {
		frost.Logger().Warn("hud: process stats unavailable", "err", err)
	}
	return h
}

// flash shows msg on the last HUD line until replaced.
func (h *hud) flash(msg string) {
	h.status = msg
	h.elapsed = hudRefresh
}

func (h *hud) update(dt float64, d *frost.Driver) {
	h.elapsed += dt
	if h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0

	if h.proc != nil {
		if mi, err := h.proc.MemoryInfo(); err == nil {
			h.rss = mi.RSS
		}
	}

	p := d.Params().Snapshot()
	g := d.Geometry()
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "strength  %.2f  [1/2]\n", p.RefractionStrength)
	fmt.Fprintf(&b, "opacity   %.2f  [3/4]\n", p.GlassOpacity)
	fmt.Fprintf(&b, "edge blur %.0f     [5/6]\n", p.EdgeBlur)
	fmt.Fprintf(&b, "size      %.0fx%.0f [7/8]\n", g.Width, g.Height)
	fmt.Fprintf(&b, "motion %s [M]  deco %v [D]\n", d.Motion().Mode(), d.Field().Decorations)
	fmt.Fprintf(&b, "rss %.1f MiB  ticks %d\n", float64(h.rss)/(1<<20), d.Ticks())
	b.WriteString(h.status)
	h.text = b.String()

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
}

func (h *hud) draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(8, 8)
	screen.DrawImage(h.img, &op)
}
