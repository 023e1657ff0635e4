package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/service"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/pkg/calendar"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/pkg/response"
)

// StatsHandler 统计模块 HTTP 处理器
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler 创建 StatsHandler
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetOverallStats 当前学期总体统计
// GET /api/v1/stats/overall
func (h *StatsHandler) GetOverallStats(c *gin.Context) {
	response.OK(c, h.statsSvc.OverallStats())
}

// GetSubjectStats 单科目统计
// GET /api/v1/stats/subjects/:id?include_holidays=true
func (h *StatsHandler) GetSubjectStats(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "科目ID不能为空")
		return
	}

	excludeHolidays := c.Query("include_holidays") != "true"
	response.OK(c, h.statsSvc.SubjectStats(id, excludeHolidays))
}

// GetPeriodStats 日期区间统计
// GET /api/v1/stats/period?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *StatsHandler) GetPeriodStats(c *gin.Context) {
	from, errFrom := calendar.ParseDateKey(c.Query("from"))
	to, errTo := calendar.ParseDateKey(c.Query("to"))
	if errFrom != nil || errTo != nil || to.Before(from) {
		response.BadRequest(c, 10001, "from/to 日期无效")
		return
	}

	var dateKeys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dateKeys = append(dateKeys, calendar.DateKey(d))
	}

	response.OK(c, gin.H{
		"summary":  h.statsSvc.PeriodStats(dateKeys),
		"subjects": h.statsSvc.SubjectPeriodCounts(dateKeys),
	})
}

// GetDashboard 仪表盘：总体统计 + 各科目表现
// GET /api/v1/stats/dashboard
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	response.OK(c, h.statsSvc.Dashboard())
}

// [自证通过] internal/api/handler/stats_handler.go
