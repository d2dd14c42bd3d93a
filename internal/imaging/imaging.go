package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	MaxUploadSize  = 2 << 20
	ThumbnailWidth = 480
	webpQuality    = 80
)

var (
	ErrEmpty       = errors.New("empty file")
	ErrTooLarge    = errors.New("file too large")
	ErrUnsupported = errors.New("unsupported file type")
	ErrCorrupt     = errors.New("invalid image")
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

type Info struct {
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// Inspect valida tamanho, tipo real (sniff, não a extensão) e cabeçalho.
func Inspect(data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data) > MaxUploadSize {
		return nil, ErrTooLarge
	}

	ct := http.DetectContentType(data)
	ext, ok := extensions[ct]
	if !ok {
		return nil, ErrUnsupported
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return nil, ErrCorrupt
	}

	return &Info{
		ContentType: ct,
		Ext:         ext,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

// Thumbnail reduz para no máximo maxWidth de largura e codifica em WebP.
func Thumbnail(data []byte, maxWidth int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrCorrupt
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxWidth {
		h = h * maxWidth / w
		w = maxWidth
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
