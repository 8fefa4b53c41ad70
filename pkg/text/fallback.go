package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// fallbackFace returns the guaranteed-available system font spec.md 4.6's
// failure semantics calls for: no ttf file read, no parse that can fail.
// basicfont.Face7x13 is a fixed-size bitmap face baked into x/image, so
// unlike every registered face it ignores the requested size — callers only
// reach it once FindFont has already failed to load anything better.
func fallbackFace(size float64) font.Face {
	return basicfont.Face7x13
}
