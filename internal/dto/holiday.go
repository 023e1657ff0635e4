package dto

// ToggleHolidayRequest 切换节假日请求
type ToggleHolidayRequest struct {
	Date string `json:"date" binding:"required"`
}

// ToggleHolidayResponse 切换节假日结果
type ToggleHolidayResponse struct {
	Date    string `json:"date"`
	Holiday bool   `json:"holiday"` // 切换后的状态
}

// HolidayListResponse 节假日列表（按日期升序）
type HolidayListResponse struct {
	Dates []string `json:"dates"`
}

// ImportHolidaysResponse ICS 导入结果
type ImportHolidaysResponse struct {
	Imported int `json:"imported"` // 新增的节假日数
}
