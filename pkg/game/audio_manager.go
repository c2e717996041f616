package game

import (
	"log"

	"github.com/decker502/flappy/pkg/storage"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// volumeStep 每次按键调整的音量
const volumeStep = 0.1

// MusicSource 提供背景音乐播放器
// AssetLoader 实现此接口；音乐未加载完成时返回 nil
type MusicSource interface {
	Music() *audio.Player
}

// AudioManager 音频管理器
// 职责：
//   - 播放与停止循环背景音乐
//   - 音量调节与静音开关，有 SettingsManager 时写入设置
//
// 播放失败（音乐未加载、已被禁用）只记录日志，不影响游戏流程。
type AudioManager struct {
	source          MusicSource              // 音乐来源
	settingsManager *storage.SettingsManager // 可为 nil，此时设置只保存在下面两个字段
	enabled         bool                     // 无 settingsManager 时的音乐开关
	volume          float64                  // 无 settingsManager 时的音量
	current         *audio.Player            // 当前播放的背景音乐
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - source: 音乐来源（通常是 AssetLoader）
//   - sm: 设置管理器，可为 nil
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(source MusicSource, sm *storage.SettingsManager) *AudioManager {
	defaults := storage.DefaultSettings()
	return &AudioManager{
		source:          source,
		settingsManager: sm,
		enabled:         defaults.MusicEnabled,
		volume:          defaults.MusicVolume,
	}
}

// PlayMusic 从头播放背景音乐
//
// 返回：
//   - bool: 是否成功开始播放
func (am *AudioManager) PlayMusic() bool {
	if !am.MusicEnabled() {
		return false
	}

	var player *audio.Player
	if am.source != nil {
		player = am.source.Music()
	}
	if player == nil {
		log.Printf("[AudioManager] Warning: Music not available, continuing without audio")
		return false
	}

	player.SetVolume(am.MusicVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music: %v", err)
	}
	player.Play()
	am.current = player

	log.Printf("[AudioManager] Playing music (volume: %.2f)", am.MusicVolume())
	return true
}

// StopMusic 暂停背景音乐并回到开头
func (am *AudioManager) StopMusic() {
	if am.current == nil {
		return
	}
	am.current.Pause()
	if err := am.current.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music: %v", err)
	}
}

// ToggleMute 切换音乐开关并保存设置
//
// 静音时立即暂停当前音乐；取消静音时，如果 resume 为 true 则继续播放。
//
// 返回：
//   - bool: 切换后音乐是否启用
func (am *AudioManager) ToggleMute(resume bool) bool {
	enabled := !am.MusicEnabled()
	am.enabled = enabled
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
		am.saveSettings()
	}

	if !enabled {
		if am.current != nil {
			am.current.Pause()
		}
		return false
	}

	if resume && am.current != nil {
		am.current.SetVolume(am.MusicVolume())
		am.current.Play()
	}
	return true
}

// AdjustVolume 按步数调节音量并保存设置
//
// 参数：
//   - steps: 正数调高，负数调低，每步 0.1
//
// 返回：
//   - float64: 调节后的音量 (0.0 ~ 1.0)
func (am *AudioManager) AdjustVolume(steps int) float64 {
	am.SetMusicVolume(am.MusicVolume() + float64(steps)*volumeStep)
	am.saveSettings()
	return am.MusicVolume()
}

// SetMusicVolume 设置音量并立即应用到当前音乐，不保存
func (am *AudioManager) SetMusicVolume(volume float64) {
	volume = min(max(volume, 0), 1)
	am.volume = volume
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	if am.current != nil {
		am.current.SetVolume(volume)
	}
}

// MusicVolume 返回当前音量
func (am *AudioManager) MusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return am.volume
}

// MusicEnabled 返回音乐是否启用
func (am *AudioManager) MusicEnabled() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicEnabled
	}
	return am.enabled
}

func (am *AudioManager) saveSettings() {
	if am.settingsManager == nil {
		return
	}
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}
}
