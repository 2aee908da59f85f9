// Command preview plays the player's idle and walking sequences side by side
// at the prefab's frame interval.
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/dasher/assets"
	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/logging"
	"github.com/milk9111/dasher/prefabs"
	"github.com/milk9111/dasher/timer"
)

const (
	cellSize = 256
	scale    = 4
)

type sequence struct {
	name    string
	frames  []*ebiten.Image
	current int
}

func (s *sequence) advance() {
	if len(s.frames) > 0 {
		s.current = (s.current + 1) % len(s.frames)
	}
}

type previewGame struct {
	sequences []*sequence
	interval  *timer.Interval
}

func (g *previewGame) Update() error {
	for n := g.interval.Advance(time.Second / common.TPS); n > 0; n-- {
		for _, s := range g.sequences {
			s.advance()
		}
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	for i, s := range g.sequences {
		ebitenutil.DebugPrintAt(screen, s.name, i*cellSize+8, 8)
		if len(s.frames) == 0 {
			continue
		}
		img := s.frames[s.current]
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(i*cellSize)+float64(cellSize-b.Dx()*scale)/2, float64(cellSize-b.Dy()*scale)/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cellSize * len(g.sequences), cellSize
}

func loadFrames(paths []string) []*ebiten.Image {
	frames := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := assets.LoadImage(p)
		if err != nil {
			logging.Log.Warnw("skip frame", "path", p, "error", err)
			continue
		}
		frames = append(frames, img)
	}
	return frames
}

func main() {
	period := flag.Duration("interval", 0, "frame interval override (default: prefab value)")
	flag.Parse()

	if err := logging.Init("", false); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		logging.Log.Fatalf("load player spec: %v", err)
	}
	if *period <= 0 {
		*period = spec.Animation.Interval()
	}

	g := &previewGame{
		sequences: []*sequence{
			{name: "idle", frames: loadFrames(spec.Animation.Idle)},
			{name: "walking", frames: loadFrames(spec.Animation.Walking)},
		},
		interval: timer.NewInterval(*period),
	}
	g.interval.Start()

	ebiten.SetWindowSize(cellSize*len(g.sequences), cellSize)
	ebiten.SetWindowTitle("dasher preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
