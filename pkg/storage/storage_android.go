//go:build android

package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ensureDir 在 gdata 初始化前创建 Android 的存档目录
// gdata 使用 /data/data/{package}/ 作为根目录，但不会创建 saves 子目录
func ensureDir() error {
	dir, err := androidDataDir()
	if err != nil {
		return fmt.Errorf("failed to detect Android data dir: %w", err)
	}

	saves := filepath.Join(dir, "saves")
	if err := os.MkdirAll(saves, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", saves, err)
	}

	probe, err := os.CreateTemp(saves, ".probe-*")
	if err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", saves, err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return nil
}

// androidDataDir 返回 /data/data/{package}
// /proc/self/cmdline 以 NUL 分隔，第一段是包名
func androidDataDir() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	pkg, _, _ := bytes.Cut(cmdline, []byte{0})
	pkg = bytes.TrimSpace(pkg)
	if len(pkg) == 0 {
		return "", errors.New("empty /proc/self/cmdline")
	}
	return filepath.Join("/data/data", string(pkg)), nil
}
