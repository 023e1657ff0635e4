package service

import "testing"

func TestHolidayService_Toggle_OnOff(t *testing.T) {
	svc, st, _ := setupTestService()

	resp, ok := svc.Holiday.Toggle("2026-01-26")
	if !ok || !resp.Holiday {
		t.Fatalf("首次切换应标记为节假日: %+v ok=%v", resp, ok)
	}
	if !svc.Holiday.IsHoliday("2026-01-26") {
		t.Error("IsHoliday 应为 true")
	}

	resp, ok = svc.Holiday.Toggle("2026-01-26")
	if !ok || resp.Holiday {
		t.Fatalf("再次切换应取消节假日: %+v", resp)
	}
	if svc.Holiday.IsHoliday("2026-01-26") {
		t.Error("IsHoliday 应为 false")
	}
	if st.saveCount != 2 {
		t.Errorf("两次切换应各触发一次快照保存，实际=%d", st.saveCount)
	}
}

func TestHolidayService_Toggle_InvalidDateKey(t *testing.T) {
	svc, st, _ := setupTestService()

	if _, ok := svc.Holiday.Toggle("26-01-2026"); ok {
		t.Error("非法日期键应为静默空操作")
	}
	if st.saveCount != 0 {
		t.Error("空操作不应触发快照保存")
	}
}

func TestHolidayService_GlobalAcrossTerms(t *testing.T) {
	svc, _, _ := setupTestService()

	svc.Holiday.Toggle("2026-01-26")
	svc.Term.SwitchTerm(2)

	if !svc.Holiday.IsHoliday("2026-01-26") {
		t.Error("节假日应跨学期全局生效")
	}
}

func TestHolidayService_List_Sorted(t *testing.T) {
	svc, _, _ := setupTestService()

	svc.Holiday.Toggle("2026-10-01")
	svc.Holiday.Toggle("2026-01-26")
	svc.Holiday.Toggle("2026-05-01")

	resp := svc.Holiday.List()
	want := []string{"2026-01-26", "2026-05-01", "2026-10-01"}
	if len(resp.Dates) != len(want) {
		t.Fatalf("期望 %v，实际=%v", want, resp.Dates)
	}
	for i := range want {
		if resp.Dates[i] != want[i] {
			t.Errorf("列表应按日期升序，期望 %v，实际=%v", want, resp.Dates)
			break
		}
	}
}

func TestHolidayService_MarkDates_CountsNewOnly(t *testing.T) {
	svc, _, _ := setupTestService()

	svc.Holiday.Toggle("2026-01-26")
	added := svc.Holiday.MarkDates([]string{"2026-01-26", "2026-01-27", "bad-key"})
	if added != 1 {
		t.Errorf("仅新日期计入新增数，期望 1，实际=%d", added)
	}
	if !svc.Holiday.IsHoliday("2026-01-27") {
		t.Error("2026-01-27 应被标记")
	}
}

// [自证通过] internal/service/holiday_service_test.go
