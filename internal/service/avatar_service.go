package service

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"

	"golang.org/x/image/draw"

	"github.com/yusufkecer/bmi-analyzer/internal/domain"
)

// AvatarWidth is the display width of a resized avatar in pixels.
const AvatarWidth = 150

var avatarExtensions = []string{".png", ".jpg", ".jpeg"}

type AvatarService struct {
	files fs.FS
	width int
}

func NewAvatarService(files fs.FS) *AvatarService {
	return &AvatarService{files: files, width: AvatarWidth}
}

// Path resolves the resource name of an avatar inside the service's file
// system, trying each supported extension in turn.
func (s *AvatarService) Path(key domain.AvatarKey) (string, error) {
	if _, err := domain.ParseAvatarKey(string(key)); err != nil {
		return "", err
	}
	for _, ext := range avatarExtensions {
		name := string(key) + ext
		if _, err := fs.Stat(s.files, name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: no image for avatar %q", domain.ErrResourceMissing, key)
}

// Load decodes the avatar and scales it to the display width, keeping the
// aspect ratio.
func (s *AvatarService) Load(key domain.AvatarKey) (image.Image, error) {
	name, err := s.Path(key)
	if err != nil {
		return nil, err
	}

	f, err := s.files.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", domain.ErrResourceMissing, name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", domain.ErrResourceMissing, name, err)
	}

	return resizeToWidth(img, s.width), nil
}

// Encode writes the resized avatar as PNG.
func (s *AvatarService) Encode(w io.Writer, key domain.AvatarKey) error {
	img, err := s.Load(key)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode avatar %s: %w", key, err)
	}
	return nil
}

// Check reports whether every category has a decodable avatar.
func (s *AvatarService) Check() error {
	var errs []error
	for _, c := range domain.Categories {
		if _, err := s.Load(domain.AvatarFor(c)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func resizeToWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return img
	}

	ratio := float64(width) / float64(bounds.Dx())
	height := int(float64(bounds.Dy()) * ratio)
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
