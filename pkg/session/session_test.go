package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/storage"
	"github.com/decker502/flappy/pkg/systems"
)

// fakeMusic 记录播放和停止次数
type fakeMusic struct {
	played  int
	stopped int
}

func (m *fakeMusic) PlayMusic() bool {
	m.played++
	return true
}

func (m *fakeMusic) StopMusic() {
	m.stopped++
}

func newTestSession(t *testing.T) (*Session, *fakeMusic) {
	t.Helper()
	music := &fakeMusic{}
	s := New(Config{
		Config: config.DefaultGameConfig(),
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Music:  music,
		Scores: storage.NewScoreKeeper(nil),
	})
	return s, music
}

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewSessionStartsOnStartScreen(t *testing.T) {
	s, music := newTestSession(t)

	if s.Phase() != components.PhaseStart {
		t.Errorf("expected start phase, got %s", s.Phase())
	}
	if s.JumpscareActive() {
		t.Error("jumpscare should not be active on start screen")
	}

	// 开始界面不推进模拟
	s.Update(testEpoch)
	s.Update(testEpoch.Add(time.Second))
	if s.World().Player.Y != 250 || len(s.World().Obstacles) != 0 {
		t.Errorf("world changed on start screen: %+v", s.World())
	}
	if music.played != 0 {
		t.Errorf("music should not play before start, played=%d", music.played)
	}
}

func TestHandleActionByPhase(t *testing.T) {
	s, music := newTestSession(t)

	if s.HandleAction(ActionNone, testEpoch) {
		t.Error("ActionNone should have no effect")
	}
	if !s.HandleAction(ActionConfirm, testEpoch) {
		t.Fatal("Enter on start screen should start the game")
	}
	if s.Phase() != components.PhasePlaying {
		t.Fatalf("expected playing phase, got %s", s.Phase())
	}
	if music.played != 1 {
		t.Errorf("expected music to start once, played=%d", music.played)
	}

	if s.HandleAction(ActionConfirm, testEpoch) {
		t.Error("Enter while playing should be ignored")
	}
	if !s.HandleAction(ActionJump, testEpoch) {
		t.Error("Space while playing should jump")
	}
	if s.World().Player.VelocityY != -6 {
		t.Errorf("expected velocity -6 after jump, got %f", s.World().Player.VelocityY)
	}
}

// TestMultipleJumpsInOneFrame 同一帧多次跳跃与一次相同
func TestMultipleJumpsInOneFrame(t *testing.T) {
	once, _ := newTestSession(t)
	many, _ := newTestSession(t)

	once.Start(testEpoch)
	many.Start(testEpoch)

	once.Jump()
	for i := 0; i < 5; i++ {
		many.HandleAction(ActionPointer, testEpoch)
	}

	once.Update(testEpoch)
	many.Update(testEpoch)

	if once.World().Player != many.World().Player {
		t.Errorf("player differs: once=%+v many=%+v", once.World().Player, many.World().Player)
	}
}

func TestFirstFrameUsesReferenceDelta(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start(testEpoch)

	// 无论距离开始多久，第一帧都按参考帧推进
	s.Update(testEpoch.Add(10 * time.Second))

	if s.World().ElapsedMs != 16.67 {
		t.Errorf("expected first frame elapsed 16.67ms, got %f", s.World().ElapsedMs)
	}
	if s.Phase() != components.PhasePlaying {
		t.Errorf("expected playing phase, got %s", s.Phase())
	}
}

// TestCollisionTriggersGameOverAndJumpscare 开局后把玩家固定在画布下方，
// 保护期结束的那一帧必须进入结束界面并显示惊吓画面，1000ms 后惊吓画面消失
func TestCollisionTriggersGameOverAndJumpscare(t *testing.T) {
	s, music := newTestSession(t)
	now := testEpoch
	s.HandleAction(ActionJump, now)

	for frame := 0; s.Phase() == components.PhasePlaying; frame++ {
		if frame > 200 {
			t.Fatal("game never ended")
		}

		s.world.Player.Y = 700
		s.world.Player.VelocityY = 0

		now = now.Add(16 * time.Millisecond)
		s.Update(now)

		elapsed := s.World().ElapsedMs
		if elapsed < 1500 && s.Phase() != components.PhasePlaying {
			t.Fatalf("collision during grace period at %.2fms", elapsed)
		}
		if elapsed >= 1500 && s.Phase() != components.PhaseGameOver {
			t.Fatalf("expected game over in the frame reaching %.2fms", elapsed)
		}
	}

	if !s.JumpscareActive() {
		t.Fatal("expected jumpscare right after collision")
	}
	if s.lastCollision.Reason != systems.CollisionBounds {
		t.Errorf("expected bounds collision, got %s", s.lastCollision.Reason)
	}
	if music.stopped != 1 {
		t.Errorf("expected music to stop once, stopped=%d", music.stopped)
	}

	if s.Restart(now) {
		t.Error("restart should be ignored during jumpscare")
	}
	if s.HandleAction(ActionPointer, now) {
		t.Error("click should be ignored during jumpscare")
	}

	s.Update(now.Add(999 * time.Millisecond))
	if !s.JumpscareActive() {
		t.Error("jumpscare ended before 1000ms")
	}

	s.Update(now.Add(1000 * time.Millisecond))
	if s.JumpscareActive() {
		t.Error("jumpscare still active after 1000ms")
	}
	if s.Phase() != components.PhaseGameOver {
		t.Errorf("expected phase to remain gameover, got %s", s.Phase())
	}
}

// TestRestartResetsState 重新开始后分数、障碍物和玩家状态全部复位
func TestRestartResetsState(t *testing.T) {
	s, music := newTestSession(t)
	now := testEpoch
	s.Start(now)

	for i := 0; i < 30; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now)
	}
	if len(s.World().Obstacles) == 0 {
		t.Fatal("expected obstacles after 30 frames")
	}

	s.world.Score = 4
	s.endRun(systems.CollisionResult{Hit: true, Reason: systems.CollisionTop})
	if !s.NewRecord() || s.BestScore() != 4 {
		t.Errorf("expected new record 4, got record=%v best=%d", s.NewRecord(), s.BestScore())
	}

	now = now.Add(time.Second)
	s.Update(now)
	if !s.HandleAction(ActionConfirm, now) {
		t.Fatal("Enter on game over screen should restart")
	}

	w := s.World()
	if s.Phase() != components.PhasePlaying {
		t.Errorf("expected playing phase, got %s", s.Phase())
	}
	if w.Score != 0 || len(w.Obstacles) != 0 || w.ElapsedMs != 0 {
		t.Errorf("expected fresh world, got score=%d obstacles=%d elapsed=%f",
			w.Score, len(w.Obstacles), w.ElapsedMs)
	}
	if w.Player != (components.PlayerComponent{Y: 250}) {
		t.Errorf("expected player reset, got %+v", w.Player)
	}
	if s.NewRecord() {
		t.Error("new record flag should reset on restart")
	}
	if s.BestScore() != 4 {
		t.Errorf("best score should survive restart, got %d", s.BestScore())
	}
	if music.played != 2 {
		t.Errorf("expected music to start on every run, played=%d", music.played)
	}
}

func TestResizeUpdatesWorld(t *testing.T) {
	s, _ := newTestSession(t)
	s.Resize(640, 480)

	if s.Canvas() != (components.Canvas{Width: 640, Height: 480}) {
		t.Errorf("unexpected canvas %+v", s.Canvas())
	}

	s.Start(testEpoch)
	s.Update(testEpoch)

	w := s.World()
	if len(w.Obstacles) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(w.Obstacles))
	}
	obs := w.Obstacles[0]
	if obs.TopHeight+obs.Gap+obs.BottomHeight < 479.999 || obs.TopHeight+obs.Gap+obs.BottomHeight > 480.001 {
		t.Errorf("obstacle does not span the resized canvas: %+v", obs)
	}
}

func TestPrecisionOverride(t *testing.T) {
	s, _ := newTestSession(t)
	if s.Precision() != config.PrecisionCoarse {
		t.Errorf("expected coarse default, got %q", s.Precision())
	}
	s.SetPrecision(config.PrecisionPixel)
	if s.Precision() != config.PrecisionPixel {
		t.Errorf("expected pixel override, got %q", s.Precision())
	}
}

func TestCloseStopsMusicAndTimer(t *testing.T) {
	s, music := newTestSession(t)
	s.Start(testEpoch)
	s.endRun(systems.CollisionResult{Hit: true, Reason: systems.CollisionBounds})

	s.Close()
	if s.JumpscareActive() {
		t.Error("jumpscare should be cancelled by Close")
	}
	if music.stopped != 2 {
		t.Errorf("expected StopMusic on game over and close, stopped=%d", music.stopped)
	}
}
