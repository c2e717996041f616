package storage

import (
	"log"

	"github.com/decker502/flappy/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// GameSettings 玩家设置，保存在 gdata 的 settings/global 下
type GameSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // M 键切换
	Fullscreen   bool    `yaml:"fullscreen"`   // F11 切换，下次启动沿用

	// Precision 碰撞精度覆盖，为空时使用 game.yaml
	Precision string `yaml:"precision,omitempty"`
}

// DefaultSettings 返回默认设置：音量 0.5，音乐开启，窗口模式
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.5,
		MusicEnabled: true,
	}
}

// SettingsManager 管理玩家设置
//
// Set* 只修改内存，调用 Save 才会持久化。
type SettingsManager struct {
	store    recordStore
	settings *GameSettings
}

// NewSettingsManager 创建设置管理器并读取已保存的设置
//
// 参数：
//   - gdataManager: 可为 nil，此时设置只保存在内存中
//
// 读取失败只记录日志，使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		store:    recordStore{manager: gdataManager, object: "settings", prop: "global"},
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 重新读取设置，没有保存过或读取失败时恢复默认值
func (sm *SettingsManager) Load() error {
	loaded := DefaultSettings()
	found, err := sm.store.load(loaded)
	if err != nil || !found {
		sm.settings = DefaultSettings()
		return err
	}

	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	if loaded.Precision != "" && !config.IsValidPrecision(loaded.Precision) {
		loaded.Precision = ""
	}
	sm.settings = loaded
	log.Printf("[SettingsManager] Loaded settings: volume=%.2f music=%v fullscreen=%v",
		loaded.MusicVolume, loaded.MusicEnabled, loaded.Fullscreen)
	return nil
}

// Save 持久化当前设置
func (sm *SettingsManager) Save() error {
	return sm.store.save(sm.settings)
}

// GetSettings 返回当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 设置音量，超出 0.0 ~ 1.0 的值会被截断
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetPrecision 设置碰撞精度覆盖，空字符串表示取消覆盖
// 未知的值被忽略
func (sm *SettingsManager) SetPrecision(precision string) {
	if precision != "" && !config.IsValidPrecision(precision) {
		log.Printf("[SettingsManager] Warning: Ignoring unknown precision %q", precision)
		return
	}
	sm.settings.Precision = precision
}

func clampVolume(volume float64) float64 {
	return min(max(volume, 0), 1)
}
