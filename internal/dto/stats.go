package dto

// 出勤率状态档位（85/75 为核心业务阈值）
const (
	StatusGood     = "good"     // >= 85
	StatusWarning  = "warning"  // >= 75
	StatusCritical = "critical" // < 75
)

// SubjectStatsResponse 单科目统计
// 实验课（名称含 LAB）的出勤与总数均按双倍权重累计
type SubjectStatsResponse struct {
	Attended   int    `json:"attended"`
	Missed     int    `json:"missed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Status     string `json:"status"`
}

// OverallStatsResponse 当前学期总体统计
// 百分比基于汇总后的出勤/总数计算，而非各科目百分比的平均
type OverallStatsResponse struct {
	Attended     int    `json:"attended"`
	Missed       int    `json:"missed"`
	Total        int    `json:"total"`
	Percentage   int    `json:"percentage"`
	Status       string `json:"status"`
	SubjectCount int    `json:"subject_count"`
}

// PeriodStatsResponse 任意日期区间统计（周/月视图汇总）
type PeriodStatsResponse struct {
	Attended   int `json:"attended"`
	Missed     int `json:"missed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// SubjectPeriodSummary 区间内单科目出勤次数（无权重，用于周/月汇总卡片）
type SubjectPeriodSummary struct {
	Subject  SubjectResponse `json:"subject"`
	Attended int             `json:"attended"`
	Missed   int             `json:"missed"`
}

// DashboardResponse 仪表盘数据：总体统计 + 各科目表现
type DashboardResponse struct {
	Overall  OverallStatsResponse      `json:"overall"`
	Subjects []SubjectPerformanceEntry `json:"subjects"`
}

// SubjectPerformanceEntry 科目表现条目
type SubjectPerformanceEntry struct {
	Subject SubjectResponse      `json:"subject"`
	Stats   SubjectStatsResponse `json:"stats"`
}
