package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// recordStore 把一条 YAML 记录保存在 gdata 的 object/prop 下
// manager 为 nil 时读写都是空操作（降级模式）
type recordStore struct {
	manager *gdata.Manager
	object  string
	prop    string
}

// load 把记录解码到 out，记录不存在时返回 false
func (s recordStore) load(out any) (bool, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(s.object, s.prop) {
		return false, nil
	}

	data, err := s.manager.LoadObjectProp(s.object, s.prop)
	if err != nil {
		return false, fmt.Errorf("failed to read %s/%s: %w", s.object, s.prop, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s/%s: %w", s.object, s.prop, err)
	}
	return true, nil
}

func (s recordStore) save(v any) error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", s.object, s.prop, err)
	}
	if err := s.manager.SaveObjectProp(s.object, s.prop, data); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", s.object, s.prop, err)
	}
	return nil
}
