package components

// Phase 游戏阶段
type Phase int

const (
	// PhaseStart 开始界面
	PhaseStart Phase = iota
	// PhasePlaying 游戏中
	PhasePlaying
	// PhaseGameOver 游戏结束（可能处于惊吓画面中）
	PhaseGameOver
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Canvas 画布尺寸
type Canvas struct {
	Width  float64
	Height float64
}
