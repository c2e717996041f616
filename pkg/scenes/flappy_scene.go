package scenes

import (
	"log"
	"time"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/session"
	"github.com/decker502/flappy/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SceneAssets provides the images drawn by FlappyScene.
// game.AssetLoader implements this interface; any getter may return nil
// when the image failed to load.
type SceneAssets interface {
	Ready() bool
	Player() *ebiten.Image
	Poster() *ebiten.Image
	Background() *ebiten.Image
	Obstacle(variant int) *ebiten.Image
}

// FontLoader creates text faces by size.
// game.ResourceManager implements this interface.
type FontLoader interface {
	LoadFont(size float64) (*text.GoTextFace, error)
}

// MusicControls switches background music on and off and changes its volume.
// game.AudioManager implements this interface.
type MusicControls interface {
	ToggleMute(resume bool) bool
	AdjustVolume(steps int) float64
}

// frameInput is the input collected in one frame.
type frameInput struct {
	jump    bool // Space
	confirm bool // Enter
	mute    bool // M
	volume  int  // +1 for = / numpad +, -1 for - / numpad -
	pointer *utils.PointerPress
}

// sceneFonts holds one face per text role.
type sceneFonts struct {
	title        *text.GoTextFace
	score        *text.GoTextFace
	button       *text.GoTextFace
	instructions *text.GoTextFace
	credits      *text.GoTextFace
}

// FlappyScene is the only scene of the game.
// It turns keyboard and pointer input into session actions and draws the
// screen that matches the current phase.
type FlappyScene struct {
	session *session.Session
	assets  SceneAssets
	audio   MusicControls // may be nil
	fonts   sceneFonts

	startedAt time.Time // scene creation time, drives the instructions pulse
	now       time.Time // time of the last Update
}

// NewFlappyScene creates the game scene.
//
// 参数:
//   - gameSession: game state machine
//   - assets: image source (usually game.AssetLoader)
//   - fonts: face source (usually game.ResourceManager)
//   - audio: mute toggle, may be nil
//
// Fonts that fail to load are logged; their text is skipped when drawing.
func NewFlappyScene(gameSession *session.Session, assets SceneAssets, fonts FontLoader, audio MusicControls) *FlappyScene {
	s := &FlappyScene{
		session:   gameSession,
		assets:    assets,
		audio:     audio,
		startedAt: time.Now(),
	}
	s.fonts = loadSceneFonts(fonts)
	return s
}

func loadSceneFonts(fl FontLoader) sceneFonts {
	load := func(size float64) *text.GoTextFace {
		if fl == nil {
			return nil
		}
		face, err := fl.LoadFont(size)
		if err != nil {
			log.Printf("[FlappyScene] Warning: Failed to load font size %.0f: %v", size, err)
			return nil
		}
		return face
	}

	return sceneFonts{
		title:        load(config.TitleFontSize),
		score:        load(config.ScoreFontSize),
		button:       load(config.ButtonFontSize),
		instructions: load(config.InstructionsFontSize),
		credits:      load(config.CreditsFontSize),
	}
}

// Update polls input, applies it to the session and advances one frame.
func (s *FlappyScene) Update(now time.Time) error {
	s.now = now
	if !s.assets.Ready() {
		return nil
	}

	s.applyInput(pollInput(), now)
	s.session.Update(now)
	return nil
}

// pollInput reads the keys and pointer pressed this frame.
func pollInput() frameInput {
	in := frameInput{
		jump:    utils.AnyKeyJustPressed(ebiten.KeySpace),
		confirm: utils.AnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		mute:    utils.AnyKeyJustPressed(ebiten.KeyM),
	}
	if utils.AnyKeyJustPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd) {
		in.volume++
	}
	if utils.AnyKeyJustPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract) {
		in.volume--
	}
	if press, ok := utils.PointerJustPressed(); ok {
		in.pointer = &press
	}
	return in
}

// applyInput maps one frame of input to session actions.
// Every source is forwarded; the session ignores what the phase does not accept.
func (s *FlappyScene) applyInput(in frameInput, now time.Time) {
	if in.mute && s.audio != nil {
		enabled := s.audio.ToggleMute(s.session.Phase() == components.PhasePlaying)
		log.Printf("[FlappyScene] Music enabled: %v", enabled)
	}
	if in.volume != 0 && s.audio != nil {
		volume := s.audio.AdjustVolume(in.volume)
		log.Printf("[FlappyScene] Music volume: %.1f", volume)
	}

	if in.jump {
		s.session.HandleAction(session.ActionJump, now)
	}
	if in.confirm {
		s.session.HandleAction(session.ActionConfirm, now)
	}
	if in.pointer != nil {
		if s.session.HandleAction(session.ActionPointer, now) {
			log.Printf("[FlappyScene] Pointer press at (%d, %d) touch=%v in %s",
				in.pointer.X, in.pointer.Y, in.pointer.IsTouch, s.session.Phase())
		}
	}
}

// Draw renders the screen for the current phase.
func (s *FlappyScene) Draw(screen *ebiten.Image) {
	if !s.assets.Ready() {
		s.drawLoading(screen)
		return
	}

	switch s.session.Phase() {
	case components.PhaseStart:
		s.drawStartScreen(screen)
	case components.PhasePlaying:
		s.drawPlaying(screen)
	case components.PhaseGameOver:
		if s.session.JumpscareActive() {
			s.drawJumpscare(screen)
		} else {
			s.drawGameOver(screen)
		}
	}
}

// Close releases the session.
func (s *FlappyScene) Close() {
	s.session.Close()
}
