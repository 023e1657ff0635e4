package model

// AttendanceEntry 单条考勤记录 — 以 (学期, dateKey, subjectID) 为键
//
// 不变量：note 仅在 attended == false 时有意义，
// 每次标记为出勤时必须同时清空 note（由所有变更路径共同维护）。
//
// 注意：没有记录（map 中不存在）与「缺勤且无备注」是两种不同状态，
// 前者表示尚未跟踪，不计入任何统计。
type AttendanceEntry struct {
	Attended bool   `json:"attended"`
	Note     string `json:"note"`
}

// [自证通过] internal/model/attendance.go
