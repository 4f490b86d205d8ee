package utils

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/setanarut/pixelkernel"
	_ "golang.org/x/image/webp"
)

// ReadImage decodes any registered format (png, jpeg, gif, bmp, tiff, webp)
// and applies the EXIF orientation.
func ReadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return img, nil
}

// SaveImage encodes img in the format named by the file extension.
func SaveImage(img image.Image, filename string) error {
	if err := imaging.Save(img, filename, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// LoadBuffer decodes path into a pixel buffer.
func LoadBuffer(path string) (*pixelkernel.Buffer, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	b, err := pixelkernel.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// SaveBuffer writes b to filename, creating parent directories as needed.
func SaveBuffer(b *pixelkernel.Buffer, filename string) error {
	img := b.Image()
	if img == nil {
		return fmt.Errorf("save %s: empty buffer", filename)
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return SaveImage(img, filename)
}

// OutputPath places the result for input under dir as <name>_<suffix><ext>.
// An empty dir keeps the input's directory. Inputs without an extension, or
// with one SaveImage cannot encode (webp), get .png.
func OutputPath(input, dir, suffix string) string {
	ext := filepath.Ext(input)
	base := filepath.Base(input)
	base = base[:len(base)-len(ext)]
	if dir == "" {
		dir = filepath.Dir(input)
	}
	if _, err := imaging.FormatFromFilename(input); err != nil {
		ext = ".png"
	}
	return filepath.Join(dir, base+"_"+suffix+ext)
}
