package storage

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时目录中创建 gdata manager
func newTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestSettingsDegradedMode(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if got := *sm.GetSettings(); got != *DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", got)
	}

	sm.SetMusicEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() without storage: %v", err)
	}
	// 没有存储时 Load 恢复默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() without storage: %v", err)
	}
	if !sm.GetSettings().MusicEnabled {
		t.Error("Load() without storage should reset to defaults")
	}
}

func TestSettingsPersist(t *testing.T) {
	m := newTestGdata(t, "test_flappy_settings")

	sm1, _ := NewSettingsManager(m)
	sm1.SetMusicVolume(0.3)
	sm1.SetMusicEnabled(false)
	sm1.SetFullscreen(true)
	sm1.SetPrecision("pixel")
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, _ := NewSettingsManager(m)
	want := GameSettings{MusicVolume: 0.3, Fullscreen: true, Precision: "pixel"}
	if got := *sm2.GetSettings(); got != want {
		t.Errorf("reloaded settings = %+v, want %+v", got, want)
	}
}

func TestSettingsLoadSanitizes(t *testing.T) {
	tests := []struct {
		name string
		data string
		want GameSettings
	}{
		{"corrupted", "musicVolume: [", *DefaultSettings()},
		{"partial keeps defaults", "fullscreen: true", GameSettings{MusicVolume: 0.5, MusicEnabled: true, Fullscreen: true}},
		{"volume clamped", "musicVolume: 3\nmusicEnabled: true", GameSettings{MusicVolume: 1, MusicEnabled: true}},
		{"unknown precision dropped", "precision: exact\nmusicVolume: 0.5\nmusicEnabled: true", *DefaultSettings()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestGdata(t, "test_flappy_settings_load")
			if err := m.SaveObjectProp("settings", "global", []byte(tt.data)); err != nil {
				t.Fatalf("SaveObjectProp() error: %v", err)
			}

			sm, _ := NewSettingsManager(m)
			if got := *sm.GetSettings(); got != tt.want {
				t.Errorf("settings = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetMusicVolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
		{1.5, 1.0},
	}

	for _, tt := range tests {
		sm.SetMusicVolume(tt.input)
		if sm.GetSettings().MusicVolume != tt.expected {
			t.Errorf("SetMusicVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().MusicVolume, tt.expected)
		}
	}
}

func TestSetPrecision(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	steps := []struct {
		input string
		want  string
	}{
		{"pixel", "pixel"},
		{"exact", "pixel"}, // 未知值被忽略
		{"", ""},
	}

	for _, step := range steps {
		sm.SetPrecision(step.input)
		if got := sm.GetSettings().Precision; got != step.want {
			t.Errorf("SetPrecision(%q): got %q, want %q", step.input, got, step.want)
		}
	}
}
