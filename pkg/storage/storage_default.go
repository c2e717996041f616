//go:build !android

package storage

// ensureDir 桌面和 WASM 上 gdata 自行创建目录
func ensureDir() error {
	return nil
}
