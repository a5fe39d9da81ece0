package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const helpFontSize = 24

var (
	KeyFont  *text.GoTextFace // key column of the help overlay
	HelpFont *text.GoTextFace // description column of the help overlay
)

func init() {
	KeyFont = loadFace(gomono.TTF, helpFontSize)
	HelpFont = loadFace(goregular.TTF, helpFontSize)
}

func loadFace(ttf []byte, size float64) *text.GoTextFace {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
}
