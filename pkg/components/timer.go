package components

// TimerComponent 通用倒计时器
// 用于一次性的定时行为（如惊吓画面持续时间），可随时取消
type TimerComponent struct {
	Name        string  // 计时器名称，如 "jumpscare"
	TargetTime  float64 // 目标时间（毫秒）
	CurrentTime float64 // 当前已过时间（毫秒）
	IsActive    bool    // 计时器是否在运行
	IsReady     bool    // 计时器是否已完成
}

// Start 以指定时长启动（或重新启动）计时器
func (t *TimerComponent) Start(durationMs float64) {
	t.TargetTime = durationMs
	t.CurrentTime = 0
	t.IsActive = true
	t.IsReady = false
}

// Advance 推进计时器
// 返回 true 表示本次推进使计时器到期（只触发一次）
func (t *TimerComponent) Advance(deltaMs float64) bool {
	if !t.IsActive {
		return false
	}
	t.CurrentTime += deltaMs
	if t.CurrentTime >= t.TargetTime {
		t.IsActive = false
		t.IsReady = true
		return true
	}
	return false
}

// Cancel 取消计时器，不会触发到期
func (t *TimerComponent) Cancel() {
	t.IsActive = false
	t.IsReady = false
	t.CurrentTime = 0
}
