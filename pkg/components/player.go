package components

// PlayerComponent 玩家状态
// 水平位置固定在画布中心，只有垂直方向受物理影响
type PlayerComponent struct {
	Y         float64 // 垂直位置（像素，左上角）
	VelocityY float64 // 垂直速度（像素/参考帧），正值向下
}

// PlayerX 返回玩家左上角的X坐标
// 玩家水平居中：canvasWidth/2 - size/2
func PlayerX(canvasWidth, size float64) float64 {
	return canvasWidth/2 - size/2
}
