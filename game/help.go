package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/knotsaver/assets"
	"github.com/meghashyamc/knotsaver/engine"
)

const (
	helpLeft      = 100
	helpTop       = 100
	helpColumnGap = 100
	helpRowHeight = 30
	helpBorder    = 5
)

var (
	helpBackground = color.RGBA{50, 50, 50, 255}
	helpBorderCol  = color.RGBA{255, 50, 50, 255}
	helpTextCol    = color.RGBA{128, 128, 255, 255}
)

func (g *Game) drawHelp(screen *ebiten.Image, rows []engine.HelpRow) {
	screen.Fill(helpBackground)

	bounds := screen.Bounds()
	vector.StrokeRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), helpBorder, helpBorderCol, true)

	for i, row := range rows {
		y := float64(helpTop + helpRowHeight*i)

		keyOp := &text.DrawOptions{}
		keyOp.GeoM.Translate(helpLeft, y)
		keyOp.ColorScale.ScaleWithColor(helpTextCol)
		text.Draw(screen, row.Key, assets.KeyFont, keyOp)

		descOp := &text.DrawOptions{}
		descOp.GeoM.Translate(helpLeft+helpColumnGap, y)
		descOp.ColorScale.ScaleWithColor(helpTextCol)
		text.Draw(screen, row.Description, assets.HelpFont, descOp)
	}
}
