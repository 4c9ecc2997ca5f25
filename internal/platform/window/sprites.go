package window

import (
	"fmt"
	"image"
	_ "image/jpeg" // sprite formats
	_ "image/png"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/javi-run/internal/config"
)

// Sprite names a configured image.
type Sprite int

const (
	SpriteCharacter Sprite = iota
	SpriteObstacle
	SpriteBackground
)

func (s Sprite) String() string {
	switch s {
	case SpriteCharacter:
		return "character"
	case SpriteObstacle:
		return "obstacle"
	case SpriteBackground:
		return "background"
	default:
		return "unknown"
	}
}

// SpriteSet loads the configured images in the background. Until an image
// has arrived, or if it never does, renderers draw the themed fallback.
type SpriteSet struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	decoded map[Sprite]image.Image
	images  map[Sprite]*ebiten.Image
	errs    map[Sprite]error
}

// LoadSprites starts one loader per non-empty path and returns immediately.
func LoadSprites(paths config.Sprites, logger *log.Logger) *SpriteSet {
	s := &SpriteSet{
		decoded: make(map[Sprite]image.Image),
		images:  make(map[Sprite]*ebiten.Image),
		errs:    make(map[Sprite]error),
	}

	for sprite, path := range map[Sprite]string{
		SpriteCharacter:  paths.Character,
		SpriteObstacle:   paths.Obstacle,
		SpriteBackground: paths.Background,
	} {
		if path == "" {
			continue
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			img, err := decodeFile(path)
			s.mu.Lock()
			defer s.mu.Unlock()
			if err != nil {
				s.errs[sprite] = err
				if logger != nil {
					logger.Warn("sprite unavailable, using fallback", "sprite", sprite, "path", path, "err", err)
				}
				return
			}
			s.decoded[sprite] = img
		}()
	}
	return s
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Wait blocks until every loader has finished.
func (s *SpriteSet) Wait() {
	s.wg.Wait()
}

// Decoded returns the decoded image, or nil while loading or on failure.
func (s *SpriteSet) Decoded(sprite Sprite) image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decoded[sprite]
}

// Err returns the load error of sprite, if any.
func (s *SpriteSet) Err(sprite Sprite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs[sprite]
}

// Image returns the GPU image for sprite, creating it on first use.
// It must be called from Draw.
func (s *SpriteSet) Image(sprite Sprite) *ebiten.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	if img, ok := s.images[sprite]; ok {
		return img
	}
	src, ok := s.decoded[sprite]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	s.images[sprite] = img
	return img
}
