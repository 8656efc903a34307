package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontData 返回内置 Go 字体的 TTF 数据
func FontData(weight FontWeight) []byte {
	if weight == FontBold {
		return gobold.TTF
	}
	return goregular.TTF
}

type faceKey struct {
	size   float64
	weight FontWeight
}

var (
	fontMu     sync.Mutex
	parsedTTF  = map[FontWeight]*truetype.Font{}
	ggFaceMemo = map[faceKey]font.Face{}
)

// TrueTypeFace 返回指定字号和字重的 freetype 字体，结果按 (size, weight) 缓存
func TrueTypeFace(size float64, weight FontWeight) (font.Face, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	key := faceKey{size: size, weight: weight}
	if face, ok := ggFaceMemo[key]; ok {
		return face, nil
	}

	ttf, ok := parsedTTF[weight]
	if !ok {
		parsed, err := truetype.Parse(FontData(weight))
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		parsedTTF[weight] = parsed
		ttf = parsed
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	ggFaceMemo[key] = face
	return face, nil
}
