package utils

import "math"

// 缓动函数
//
// 接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseInOutCubic 三次方缓入缓出
// 公式：t < 0.5 时 4t³，否则 1 - (-2t+2)³/2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// PingPong 把单调递增的时间映射为 0 -> 1 -> 0 往返的进度
//
// 参数:
//   - elapsed: 已过时间
//   - period: 一次往返的时长，<= 0 时返回 0
func PingPong(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	phase := math.Mod(elapsed, period) / period
	if phase < 0 {
		phase += 1
	}
	if phase < 0.5 {
		return phase * 2
	}
	return 2 - phase*2
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
