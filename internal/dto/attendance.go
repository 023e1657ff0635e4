package dto

// AttendanceResponse 单条考勤记录响应
type AttendanceResponse struct {
	Attended bool   `json:"attended"`
	Note     string `json:"note"`
}

// SetAttendanceRequest 直接写入考勤记录请求
type SetAttendanceRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Attended  bool   `json:"attended"`
	Note      string `json:"note"`
}

// ClearAttendanceRequest 清除考勤记录请求
type ClearAttendanceRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// SaveNoteRequest 保存缺勤备注请求
type SaveNoteRequest struct {
	SubjectID string `json:"subject_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Note      string `json:"note"`
}

// CellClickRequest 单元格点击事件（来自输入协作方）
// TimestampMS 为事件发生时刻的毫秒时间戳，用于多击手势判定
type CellClickRequest struct {
	SubjectID   string `json:"subject_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TimestampMS int64  `json:"timestamp_ms" binding:"required"`
}

// AltClickRequest 单元格右键/备选点击事件
// WithModifier 表示是否按住修饰键（按住时切换节假日）
type AltClickRequest struct {
	SubjectID    string `json:"subject_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	WithModifier bool   `json:"with_modifier"`
}

// ── 手势结果 ──

// 点击动作常量
const (
	ActionToggled        = "toggled"         // 翻转出勤状态
	ActionCleared        = "cleared"         // 三击清除考勤记录
	ActionHolidayCleared = "holiday_cleared" // 三击取消节假日
	ActionHolidayToggled = "holiday_toggled" // 修饰键右键切换节假日
	ActionBlockedHoliday = "blocked_holiday" // 节假日禁止标记出勤
	ActionNoteContext    = "note_context"    // 打开备注编辑上下文
	ActionNone           = "none"            // 无副作用
)

// CellClickResult 点击手势处理结果
type CellClickResult struct {
	Action   string `json:"action"`
	Attended *bool  `json:"attended,omitempty"` // Action 为 toggled 时的新状态
}

// NoteContext 备注编辑上下文（交给外部备注编辑器）
type NoteContext struct {
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Date        string `json:"date"`
	Note        string `json:"note"`
}

// AltClickResult 备选点击处理结果
type AltClickResult struct {
	Action      string       `json:"action"`
	Holiday     *bool        `json:"holiday,omitempty"` // Action 为 holiday_toggled 时的新状态
	NoteContext *NoteContext `json:"note_context,omitempty"`
}
