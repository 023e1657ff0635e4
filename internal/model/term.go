package model

// Term 学期 — 拥有独立的科目列表与考勤台账
//
// Attendance 为稀疏嵌套映射：dateKey → subjectID → 记录。
// 不变量：内层映射为空时必须整体删除，不留空容器。
type Term struct {
	Subjects   []Subject                             `json:"subjects"`
	Attendance map[string]map[string]AttendanceEntry `json:"attendance"`
}

// NewTerm 创建空学期
func NewTerm() *Term {
	return &Term{
		Subjects:   []Subject{},
		Attendance: make(map[string]map[string]AttendanceEntry),
	}
}

// FindSubject 按 ID 查找科目
func (t *Term) FindSubject(subjectID string) (Subject, bool) {
	for _, s := range t.Subjects {
		if s.SubjectID == subjectID {
			return s, true
		}
	}
	return Subject{}, false
}

// Entry 查询考勤记录，第二返回值表示记录是否存在
func (t *Term) Entry(dateKey, subjectID string) (AttendanceEntry, bool) {
	day, ok := t.Attendance[dateKey]
	if !ok {
		return AttendanceEntry{}, false
	}
	entry, ok := day[subjectID]
	return entry, ok
}

// SetEntry 写入考勤记录（惰性创建日期级映射，覆盖已有记录）
func (t *Term) SetEntry(dateKey, subjectID string, entry AttendanceEntry) {
	if t.Attendance == nil {
		t.Attendance = make(map[string]map[string]AttendanceEntry)
	}
	day, ok := t.Attendance[dateKey]
	if !ok {
		day = make(map[string]AttendanceEntry)
		t.Attendance[dateKey] = day
	}
	day[subjectID] = entry
}

// ClearEntry 删除考勤记录；日期级映射清空后一并删除
func (t *Term) ClearEntry(dateKey, subjectID string) {
	day, ok := t.Attendance[dateKey]
	if !ok {
		return
	}
	delete(day, subjectID)
	if len(day) == 0 {
		delete(t.Attendance, dateKey)
	}
}

// RemoveSubject 移除科目并级联删除其在所有日期下的考勤记录
// subjectID 不存在时为幂等空操作
func (t *Term) RemoveSubject(subjectID string) {
	kept := t.Subjects[:0]
	for _, s := range t.Subjects {
		if s.SubjectID != subjectID {
			kept = append(kept, s)
		}
	}
	t.Subjects = kept

	for dateKey := range t.Attendance {
		t.ClearEntry(dateKey, subjectID)
	}
}

// [自证通过] internal/model/term.go
