package car

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// spriteCache holds the lazily built car image so Draw doesn't rebuild it
// every frame.
type spriteCache struct {
	image *ebiten.Image
}

// Draw renders the car to the screen, rotated about its center by the
// current heading.
func (c *Car) Draw(screen *ebiten.Image) {
	if c.sprite == nil {
		c.sprite = &spriteCache{image: buildCarSprite(int(c.Width), int(c.Height))}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-c.Width/2, -c.Height/2) // Center rotation
	op.GeoM.Rotate(c.Angle)
	op.GeoM.Translate(c.X, c.Y)
	screen.DrawImage(c.sprite.image, op)
}

// buildCarSprite creates a placeholder top-down car image: a blue body
// with two black detail squares marking the front wheels.
func buildCarSprite(width, height int) *ebiten.Image {
	carImg := ebiten.NewImage(width, height)
	carImg.Fill(color.RGBA{0, 0, 255, 255})

	detail := ebiten.NewImage(5, 5)
	detail.Fill(color.RGBA{0, 0, 0, 255})

	topOp := &ebiten.DrawImageOptions{}
	topOp.GeoM.Translate(float64(width-10), 5)
	carImg.DrawImage(detail, topOp)

	bottomOp := &ebiten.DrawImageOptions{}
	bottomOp.GeoM.Translate(float64(width-10), float64(height-10))
	carImg.DrawImage(detail, bottomOp)

	return carImg
}
