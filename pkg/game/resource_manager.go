package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/decker502/flappy/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, alpha masks, audio and
// font faces, ensuring that resources are loaded only once and reused.
//
// All resources are read from the fs.FS passed to NewResourceManager, so the
// same code serves a directory on disk (os.DirFS), an embedded filesystem on
// mobile, and fstest.MapFS in tests.
//
// Thread Safety Note:
// The caches are guarded by a mutex because the AssetLoader decodes images
// from several goroutines at once.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(os.DirFS("assets"), audioContext)
//	img, err := rm.LoadImage("player.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	fsys         fs.FS
	audioContext *audio.Context // May be nil; audio loads then fail

	mu            sync.Mutex
	imageCache    map[string]*ebiten.Image         // path -> Image
	maskCache     map[string]*components.AlphaMask // path -> alpha mask
	audioCache    map[string]*audio.Player         // path -> looping Player
	fontSource    *text.GoTextFaceSource           // Lazily parsed Go Bold source
	fontFaceCache map[float64]*text.GoTextFace     // size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - fsys: The filesystem assets are read from. Paths passed to the Load
//     methods are slash-separated and relative to its root.
//   - audioContext: The global audio context. Ebitengine allows only one per
//     process, so it is created by the caller. It may be nil when the
//     process has no audio output.
func NewResourceManager(fsys fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fsys:          fsys,
		audioContext:  audioContext,
		imageCache:    make(map[string]*ebiten.Image),
		maskCache:     make(map[string]*components.AlphaMask),
		audioCache:    make(map[string]*audio.Player),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// DecodeImage reads and decodes an image without touching the caches.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) DecodeImage(p string) (image.Image, error) {
	if rm.fsys == nil {
		return nil, fmt.Errorf("no asset filesystem configured")
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}
	return img, nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
// The decoded pixels are also sampled into an AlphaMask for pixel collision,
// available afterwards through GetAlphaMask.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	rm.mu.Lock()
	cached, exists := rm.imageCache[p]
	rm.mu.Unlock()
	if exists {
		return cached, nil
	}

	img, err := rm.DecodeImage(p)
	if err != nil {
		return nil, err
	}

	mask := components.NewAlphaMask(img)
	ebitenImg := ebiten.NewImageFromImage(img)

	rm.mu.Lock()
	defer rm.mu.Unlock()
	// Another goroutine may have finished the same path first
	if cached, exists := rm.imageCache[p]; exists {
		return cached, nil
	}
	rm.imageCache[p] = ebitenImg
	rm.maskCache[p] = mask

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// It returns nil if the image has not been loaded.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.imageCache[p]
}

// GetAlphaMask retrieves the alpha mask built when the image was loaded.
// It returns nil if the image has not been loaded.
func (rm *ResourceManager) GetAlphaMask(p string) *components.AlphaMask {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.maskCache[p]
}

// LoadAudio loads an audio file from the specified path and caches it for future use.
// If the audio has already been loaded, it returns the cached player.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
//
// The audio is wrapped in an infinite loop, making it suitable for background music.
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if there is no audio context, the file cannot be read,
//     or the format is unsupported.
func (rm *ResourceManager) LoadAudio(p string) (*audio.Player, error) {
	rm.mu.Lock()
	cached, exists := rm.audioCache[p]
	rm.mu.Unlock()
	if exists {
		return cached, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("failed to load audio %s: no audio context", p)
	}
	if rm.fsys == nil {
		return nil, fmt.Errorf("no asset filesystem configured")
	}

	// Read the entire file into memory so the stream can seek without an open handle
	audioData, err := fs.ReadFile(rm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	reader := bytes.NewReader(audioData)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())

	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	rm.mu.Lock()
	rm.audioCache[p] = player
	rm.mu.Unlock()

	return player, nil
}

// LoadFont returns a Go Bold text face of the given size.
// The font is bundled with golang.org/x/image, so it never depends on the
// asset filesystem. Faces are cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if face, exists := rm.fontFaceCache[size]; exists {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
