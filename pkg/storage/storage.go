// Package storage 保存玩家设置和最高分
//
// 数据以 YAML 记录的形式写入 gdata，图形版和终端版共用同一个存储目录。
// gdata 不可用时所有管理器退化为只在内存中工作。
package storage

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "flappy_modi"

// Open 打开 gdata 存储
// 失败时返回 nil，调用方按降级模式使用
func Open() *gdata.Manager {
	if err := ensureDir(); err != nil {
		log.Printf("[Storage] Warning: Storage directory unavailable: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable, data will not persist: %v", err)
		return nil
	}
	return manager
}
