package dto

// AddSubjectRequest 添加科目请求
type AddSubjectRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// SubjectResponse 科目响应
type SubjectResponse struct {
	SubjectID string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	IsLab     bool   `json:"is_lab"`
}
