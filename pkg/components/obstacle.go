package components

// ObstacleComponent 障碍物（上下两段柱子和中间的缺口）
type ObstacleComponent struct {
	ID           int     // 单调递增编号
	X            float64 // 左边缘X坐标，每帧减小
	TopHeight    float64 // 上段高度（也是缺口起始Y）
	BottomHeight float64 // 下段高度
	Gap          float64 // 缺口高度
	Variant      int     // 贴图变体 0-3
	Passed       bool    // 是否已计分
}

// BottomY 返回下段柱子的起始Y坐标
func (o *ObstacleComponent) BottomY() float64 {
	return o.TopHeight + o.Gap
}

// Right 返回障碍物右边缘X坐标
func (o *ObstacleComponent) Right(width float64) float64 {
	return o.X + width
}
