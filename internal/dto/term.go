package dto

// SwitchTermRequest 切换当前学期请求
type SwitchTermRequest struct {
	Term int `json:"term" binding:"required"`
}

// TermListResponse 学期列表响应
type TermListResponse struct {
	Current int   `json:"current"`
	Terms   []int `json:"terms"`
}

// CurrentTermResponse 当前学期响应
type CurrentTermResponse struct {
	Term         int `json:"term"`
	SubjectCount int `json:"subject_count"`
}
