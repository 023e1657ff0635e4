package dto

// CellState 周视图单元格状态
// Tracked=false 表示该 (科目, 日期) 尚未跟踪，与「缺勤」不同
type CellState struct {
	Date     string `json:"date"`
	Holiday  bool   `json:"holiday"`
	Tracked  bool   `json:"tracked"`
	Attended bool   `json:"attended"`
	Note     string `json:"note,omitempty"`
}

// SubjectWeekRow 周视图中单个科目的一行
type SubjectWeekRow struct {
	Subject SubjectResponse `json:"subject"`
	Cells   []CellState     `json:"cells"`
}

// WeekGridResponse 周视图网格
type WeekGridResponse struct {
	WeekStart string                 `json:"week_start"`
	Dates     []string               `json:"dates"`
	Rows      []SubjectWeekRow       `json:"rows"`
	Summary   PeriodStatsResponse    `json:"summary"`
	Subjects  []SubjectPeriodSummary `json:"subject_summaries"`
}

// 月视图标记点状态常量
const (
	MarkPresent  = "present"
	MarkAbsent   = "absent"
	MarkUnmarked = "unmarked"
)

// SubjectMark 月视图中单科目的标记点
type SubjectMark struct {
	SubjectID string `json:"subject_id"`
	Status    string `json:"status"` // present | absent | unmarked
}

// MonthCell 月视图日期格
type MonthCell struct {
	Date    string        `json:"date"`
	InMonth bool          `json:"in_month"`
	Today   bool          `json:"today"`
	Holiday bool          `json:"holiday"`
	Marks   []SubjectMark `json:"marks"`
}

// MonthGridResponse 月视图网格（固定 42 格）
// 汇总仅统计属于当月的日期
type MonthGridResponse struct {
	Month    string                 `json:"month"` // YYYY-MM
	Cells    []MonthCell            `json:"cells"`
	Summary  PeriodStatsResponse    `json:"summary"`
	Subjects []SubjectPeriodSummary `json:"subject_summaries"`
}
