//go:build !mobile

// Package mobile 是 ebitenmobile bind 的入口
//
// 普通构建只编译本文件，实际绑定代码在 mobile.go 和 embed.go（-tags mobile）。
package mobile

// Dummy 保证 ebitenmobile 生成的绑定在两种构建下都有导出符号
func Dummy() {}
