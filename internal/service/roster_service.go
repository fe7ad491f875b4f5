package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BukiOffor/kud-server/internal/dto"
	"github.com/BukiOffor/kud-server/internal/model"
	"github.com/BukiOffor/kud-server/internal/repository"
)

// ── 排位模块业务错误 ──

var (
	ErrRosterNotFound      = errors.New("排位表不存在")
	ErrRosterAlreadyActive = errors.New("排位表已处于激活状态")
	ErrRosterEnded         = errors.New("排位表结束日期已过")
	ErrRosterNotStarted    = errors.New("排位表开始日期尚未到来")
	ErrRosterDateInvalid   = errors.New("日期格式无效或结束日期早于开始日期")
	ErrRosterQuotaInvalid  = errors.New("场地配额非法：子配额之和不得超过总配额")
	ErrRosterNoCapacity    = errors.New("排位表未配置任何可用席位")
	ErrInvalidHall         = errors.New("非法场地")
	ErrAssignmentNotFound  = errors.New("分配记录不存在")
	ErrNoEligibleUsers     = errors.New("无在册候选人可供排位")
)

const dateLayout = "2006-01-02"

// RosterService 排位业务接口
type RosterService interface {
	// 创建排位表
	Create(ctx context.Context, req *dto.CreateRosterRequest, callerID string) (*dto.RosterResponse, error)
	// 获取排位表
	GetByID(ctx context.Context, id string) (*dto.RosterResponse, error)
	// 列出全部排位表
	List(ctx context.Context) ([]dto.RosterResponse, error)
	// 更新排位表
	Update(ctx context.Context, id string, req *dto.UpdateRosterRequest, callerID string) (*dto.RosterResponse, error)
	// 删除排位表
	Delete(ctx context.Context, id, callerID string) error
	// 激活排位表（核心操作：整表重算并原子提交）
	Activate(ctx context.Context, rosterID, callerID string) (*dto.ActivateRosterResponse, error)
	// 查看分配明细（可按场地过滤）
	Assignments(ctx context.Context, rosterID string, hall *string) ([]dto.AssignmentResponse, error)
	// 手动调整某条分配的场地
	UpdateAssignmentHall(ctx context.Context, assignmentID string, req *dto.UpdateAssignmentHallRequest, callerID string) error
	// 手动追加用户到排位表
	AddUserToRoster(ctx context.Context, rosterID string, req *dto.AddUserToRosterRequest, callerID string) error
	// 全场地填充统计
	Stats(ctx context.Context, rosterID string) ([]dto.HallStatsResponse, error)
	// 单场地填充统计
	StatsForHall(ctx context.Context, rosterID, hall string) (*dto.HallStatsResponse, error)
	// 用户历史分配
	UserHistory(ctx context.Context, userID string) ([]dto.UserRosterHistoryResponse, error)
}

type rosterService struct {
	repo            *repository.Repository
	logger          *zap.Logger
	historyLookback int
	now             func() time.Time
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(repo *repository.Repository, historyLookback int, logger *zap.Logger) RosterService {
	if historyLookback <= 0 {
		historyLookback = 5
	}
	return &rosterService{
		repo:            repo,
		logger:          logger,
		historyLookback: historyLookback,
		now:             time.Now,
	}
}

// ════════════════════════════════════════════════════════════
// Create — 创建排位表
// ════════════════════════════════════════════════════════════

func (s *rosterService) Create(ctx context.Context, req *dto.CreateRosterRequest, callerID string) (*dto.RosterResponse, error) {
	startDate, endDate, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	quotas, err := buildQuotas(req.Quotas)
	if err != nil {
		return nil, err
	}

	allowOverflow := true
	if req.AllowOverflow != nil {
		allowOverflow = *req.AllowOverflow
	}

	roster := &model.Roster{
		Name:           req.Name,
		Year:           req.Year,
		StartDate:      startDate,
		EndDate:        endDate,
		UseGenderQuota: req.UseGenderQuota,
		AllowOverflow:  allowOverflow,
		Quotas:         quotas,
	}
	roster.CreatedBy = &callerID
	roster.UpdatedBy = &callerID

	if err := s.repo.Roster.Create(ctx, roster); err != nil {
		s.logger.Error("创建排位表失败", zap.Error(err))
		return nil, err
	}

	s.emitLog(ctx, model.ActionRosterCreated, callerID, "Roster", roster.RosterID, "")

	resp := toRosterResponse(roster)
	return &resp, nil
}

// ════════════════════════════════════════════════════════════
// GetByID / List
// ════════════════════════════════════════════════════════════

func (s *rosterService) GetByID(ctx context.Context, id string) (*dto.RosterResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		s.logger.Error("查询排位表失败", zap.Error(err))
		return nil, err
	}
	resp := toRosterResponse(roster)
	return &resp, nil
}

func (s *rosterService) List(ctx context.Context) ([]dto.RosterResponse, error) {
	rosters, err := s.repo.Roster.List(ctx)
	if err != nil {
		s.logger.Error("查询排位表列表失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.RosterResponse, 0, len(rosters))
	for i := range rosters {
		result = append(result, toRosterResponse(&rosters[i]))
	}
	return result, nil
}

// ════════════════════════════════════════════════════════════
// Update — 更新排位表
// ════════════════════════════════════════════════════════════

func (s *rosterService) Update(ctx context.Context, id string, req *dto.UpdateRosterRequest, callerID string) (*dto.RosterResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		s.logger.Error("查询排位表失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		roster.Name = *req.Name
	}
	if req.Year != nil {
		roster.Year = *req.Year
	}
	if req.StartDate != nil || req.EndDate != nil {
		startStr := roster.StartDate.Format(dateLayout)
		endStr := roster.EndDate.Format(dateLayout)
		if req.StartDate != nil {
			startStr = *req.StartDate
		}
		if req.EndDate != nil {
			endStr = *req.EndDate
		}
		startDate, endDate, err := parseWindow(startStr, endStr)
		if err != nil {
			return nil, err
		}
		roster.StartDate = startDate
		roster.EndDate = endDate
	}
	if req.UseGenderQuota != nil {
		roster.UseGenderQuota = *req.UseGenderQuota
	}
	if req.AllowOverflow != nil {
		roster.AllowOverflow = *req.AllowOverflow
	}

	var newQuotas []model.RosterQuota
	if req.Quotas != nil {
		newQuotas, err = buildQuotas(req.Quotas)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Roster.Update(ctx, roster); err != nil {
		s.logger.Error("更新排位表失败", zap.Error(err))
		return nil, err
	}
	if newQuotas != nil {
		if err := s.repo.Roster.ReplaceQuotas(ctx, roster.RosterID, newQuotas); err != nil {
			s.logger.Error("更新场地配额失败", zap.Error(err))
			return nil, err
		}
		roster.Quotas = newQuotas
	}

	s.emitLog(ctx, model.ActionRosterUpdated, callerID, "Roster", roster.RosterID, "")

	resp := toRosterResponse(roster)
	return &resp, nil
}

// ════════════════════════════════════════════════════════════
// Delete — 删除排位表
// ════════════════════════════════════════════════════════════

func (s *rosterService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.Roster.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRosterNotFound
		}
		return err
	}
	if err := s.repo.Roster.Delete(ctx, id); err != nil {
		s.logger.Error("删除排位表失败", zap.Error(err))
		return err
	}
	s.emitLog(ctx, model.ActionRosterDeleted, callerID, "Roster", id, "")
	return nil
}

// ════════════════════════════════════════════════════════════
// Activate — 激活排位表
// ════════════════════════════════════════════════════════════
//
// 状态机：Loaded → Validated → Computed → Committed（任一步失败整体回滚）
//
// 提交阶段在单个事务内依次执行：
//  a. 删除该排位表既有分配（支持幂等重激活）
//  b. 批量写入新分配
//  c. 取消上一个激活排位表的激活标记
//  d. 激活本排位表
//  e. 将每个用户的当前场地写回用户档案
//
// 目标排位表行加 FOR UPDATE 锁，串行化同一排位表的并发激活；
// 唯一激活不变量由同事务内的 c+d 与数据库部分唯一索引共同保证。
// 审计日志在提交成功后尽力而为写入，不参与事务。

func (s *rosterService) Activate(ctx context.Context, rosterID, callerID string) (*dto.ActivateRosterResponse, error) {
	resp := &dto.ActivateRosterResponse{
		RosterID:   rosterID,
		TierCounts: make(map[string]int),
	}

	err := s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		// ── Loaded ──
		roster, err := txRepo.Roster.GetByIDForUpdate(ctx, rosterID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRosterNotFound
			}
			return err
		}

		// ── Validated ──
		today := truncateToDate(s.now())
		if roster.IsActive {
			return ErrRosterAlreadyActive
		}
		if roster.EndDate.Before(today) {
			return ErrRosterEnded
		}
		if roster.StartDate.After(today) {
			return ErrRosterNotStarted
		}
		if roster.TotalSeats() <= 0 {
			return ErrRosterNoCapacity
		}

		users, err := txRepo.User.ListActive(ctx)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			return ErrNoEligibleUsers
		}
		resp.TotalCandidates = len(users)

		// ── Computed ──
		// 仅操作内存容量面板，不触碰已持久化的分配行
		board := newCapacityBoard(roster)
		rng := rand.New(rand.NewSource(s.now().UnixNano()))
		overflowByHall := make(map[model.Hall]int)

		assignments := make([]model.RosterAssignment, 0, len(users))
		for i := range users {
			user := &users[i]
			history, err := txRepo.Assignment.RecentHalls(ctx, user.UserID, roster.Year, s.historyLookback)
			if err != nil {
				return err
			}

			gender := normalizeGender(user.Gender)
			result := pickHall(rng, board, gender, history, roster.AllowOverflow)
			resp.TierCounts[result.tier.String()]++

			if !result.assigned {
				resp.Unassigned++
				resp.Warnings = append(resp.Warnings,
					fmt.Sprintf("用户 %s 未获分配：全部场地席位已耗尽", user.RegNo))
				continue
			}

			if seatTaken := board.consume(result.hall, gender); !seatTaken {
				overflowByHall[result.hall]++
			}
			assignments = append(assignments, model.RosterAssignment{
				RosterID: roster.RosterID,
				UserID:   user.UserID,
				Hall:     result.hall,
				Year:     roster.Year,
			})
		}
		resp.Assigned = len(assignments)
		for _, hall := range model.AllHalls() {
			if n := overflowByHall[hall]; n > 0 {
				resp.Warnings = append(resp.Warnings,
					fmt.Sprintf("场地 %s 超出配额 %d 人", hall, n))
			}
		}

		// ── Committed ──
		if err := txRepo.Assignment.DeleteByRoster(ctx, roster.RosterID); err != nil {
			return err
		}
		if err := txRepo.Assignment.BatchCreate(ctx, assignments); err != nil {
			return err
		}

		prev, err := txRepo.Roster.FindActive(ctx)
		if err != nil {
			return err
		}
		if prev != nil && prev.RosterID != roster.RosterID {
			if err := txRepo.Roster.SetActive(ctx, prev.RosterID, false); err != nil {
				return err
			}
		}
		if err := txRepo.Roster.SetActive(ctx, roster.RosterID, true); err != nil {
			return err
		}

		for _, a := range assignments {
			if err := txRepo.User.UpdateCurrentHall(ctx, a.UserID, a.Hall); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitLog(ctx, model.ActionRosterActivated, callerID, "Roster", rosterID,
		fmt.Sprintf("assigned=%d unassigned=%d", resp.Assigned, resp.Unassigned))

	s.logger.Info("排位表激活成功",
		zap.String("roster_id", rosterID),
		zap.Int("assigned", resp.Assigned),
		zap.Int("unassigned", resp.Unassigned),
	)

	return resp, nil
}

// ════════════════════════════════════════════════════════════
// Assignments — 查看分配明细
// ════════════════════════════════════════════════════════════

func (s *rosterService) Assignments(ctx context.Context, rosterID string, hall *string) ([]dto.AssignmentResponse, error) {
	if _, err := s.repo.Roster.GetByID(ctx, rosterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}

	var hallFilter *model.Hall
	if hall != nil {
		h := model.Hall(*hall)
		if !h.Valid() {
			return nil, ErrInvalidHall
		}
		hallFilter = &h
	}

	assignments, err := s.repo.Assignment.ListByRoster(ctx, rosterID, hallFilter)
	if err != nil {
		s.logger.Error("查询分配明细失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		item := dto.AssignmentResponse{
			ID:        a.AssignmentID,
			UserID:    a.UserID,
			Hall:      string(a.Hall),
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		}
		if a.User != nil {
			item.FullName = a.User.FullName()
			item.RegNo = a.User.RegNo
			item.Gender = a.User.Gender
		}
		result = append(result, item)
	}
	return result, nil
}

// ════════════════════════════════════════════════════════════
// UpdateAssignmentHall — 手动调整分配场地
// ════════════════════════════════════════════════════════════

func (s *rosterService) UpdateAssignmentHall(ctx context.Context, assignmentID string, req *dto.UpdateAssignmentHallRequest, callerID string) error {
	hall := model.Hall(req.Hall)
	if !hall.Valid() {
		return ErrInvalidHall
	}

	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}

	err = s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Assignment.UpdateHall(ctx, assignmentID, hall); err != nil {
			return err
		}
		return txRepo.User.UpdateCurrentHall(ctx, assignment.UserID, hall)
	})
	if err != nil {
		s.logger.Error("调整分配场地失败", zap.Error(err))
		return err
	}

	s.emitLog(ctx, model.ActionUserHallUpdated, callerID, "User", assignment.UserID,
		fmt.Sprintf("hall=%s", hall))
	return nil
}

// ════════════════════════════════════════════════════════════
// AddUserToRoster — 手动追加用户
// ════════════════════════════════════════════════════════════

func (s *rosterService) AddUserToRoster(ctx context.Context, rosterID string, req *dto.AddUserToRosterRequest, callerID string) error {
	hall := model.Hall(req.Hall)
	if !hall.Valid() {
		return ErrInvalidHall
	}

	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRosterNotFound
		}
		return err
	}

	err = s.repo.Tx.Transaction(ctx, func(txRepo *repository.Repository) error {
		assignment := &model.RosterAssignment{
			RosterID: roster.RosterID,
			UserID:   req.UserID,
			Hall:     hall,
			Year:     roster.Year,
		}
		if err := txRepo.Assignment.Create(ctx, assignment); err != nil {
			return err
		}
		return txRepo.User.UpdateCurrentHall(ctx, req.UserID, hall)
	})
	if err != nil {
		s.logger.Error("追加用户到排位表失败", zap.Error(err))
		return err
	}

	s.emitLog(ctx, model.ActionUserAddedToRoster, callerID, "User", req.UserID,
		fmt.Sprintf("roster=%s hall=%s", rosterID, hall))
	return nil
}

// ════════════════════════════════════════════════════════════
// Stats — 填充统计（只读聚合）
// ════════════════════════════════════════════════════════════

func (s *rosterService) Stats(ctx context.Context, rosterID string) ([]dto.HallStatsResponse, error) {
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByRoster(ctx, rosterID, nil)
	if err != nil {
		s.logger.Error("查询分配明细失败", zap.Error(err))
		return nil, err
	}

	stats := make([]dto.HallStatsResponse, 0, len(model.AllHalls()))
	for _, hall := range model.AllHalls() {
		stats = append(stats, buildHallStats(roster, hall, assignments))
	}
	return stats, nil
}

func (s *rosterService) StatsForHall(ctx context.Context, rosterID, hall string) (*dto.HallStatsResponse, error) {
	h := model.Hall(hall)
	if !h.Valid() {
		return nil, ErrInvalidHall
	}

	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterNotFound
		}
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByRoster(ctx, rosterID, &h)
	if err != nil {
		s.logger.Error("查询分配明细失败", zap.Error(err))
		return nil, err
	}

	result := buildHallStats(roster, h, assignments)
	return &result, nil
}

// ════════════════════════════════════════════════════════════
// UserHistory — 用户历史分配
// ════════════════════════════════════════════════════════════

func (s *rosterService) UserHistory(ctx context.Context, userID string) ([]dto.UserRosterHistoryResponse, error) {
	assignments, err := s.repo.Assignment.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询用户历史分配失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserRosterHistoryResponse, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		item := dto.UserRosterHistoryResponse{
			AssignmentID: a.AssignmentID,
			RosterID:     a.RosterID,
			Hall:         string(a.Hall),
			Year:         a.Year,
			CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		}
		if a.Roster != nil {
			item.RosterName = a.Roster.Name
			item.StartDate = a.Roster.StartDate.Format(dateLayout)
			item.EndDate = a.Roster.EndDate.Format(dateLayout)
			item.IsActive = a.Roster.IsActive
		}
		result = append(result, item)
	}
	return result, nil
}

// ════════════════════════════════════════════════════════════
// 内部辅助方法
// ════════════════════════════════════════════════════════════

// emitLog 尽力而为写入审计日志，失败仅记录不上抛
func (s *rosterService) emitLog(ctx context.Context, action, actorID, targetType, targetID, details string) {
	log := &model.ActivityLog{
		Action:     action,
		ActorID:    actorID,
		TargetID:   &targetID,
		TargetType: &targetType,
		Details:    details,
	}
	if err := s.repo.ActivityLog.Create(ctx, log); err != nil {
		s.logger.Warn("审计日志写入失败",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// parseWindow 解析并校验激活窗口
func parseWindow(startStr, endStr string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrRosterDateInvalid
	}
	endDate, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrRosterDateInvalid
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, ErrRosterDateInvalid
	}
	return startDate, endDate, nil
}

// buildQuotas 构建并校验场地配额：场地合法且不重复，子配额之和不超过总配额
func buildQuotas(reqs []dto.HallQuotaRequest) ([]model.RosterQuota, error) {
	seen := make(map[model.Hall]bool, len(reqs))
	quotas := make([]model.RosterQuota, 0, len(reqs))
	for _, q := range reqs {
		hall := model.Hall(q.Hall)
		if !hall.Valid() || seen[hall] {
			return nil, ErrInvalidHall
		}
		seen[hall] = true

		if q.TotalSeats < 0 {
			return nil, ErrRosterQuotaInvalid
		}
		sub := 0
		if q.MaleSeats != nil {
			if *q.MaleSeats < 0 {
				return nil, ErrRosterQuotaInvalid
			}
			sub += *q.MaleSeats
		}
		if q.FemaleSeats != nil {
			if *q.FemaleSeats < 0 {
				return nil, ErrRosterQuotaInvalid
			}
			sub += *q.FemaleSeats
		}
		if sub > q.TotalSeats {
			return nil, ErrRosterQuotaInvalid
		}

		quotas = append(quotas, model.RosterQuota{
			Hall:        hall,
			TotalSeats:  q.TotalSeats,
			MaleSeats:   q.MaleSeats,
			FemaleSeats: q.FemaleSeats,
		})
	}
	return quotas, nil
}

// buildHallStats 单场地统计：期望数来自配额，实际数来自已提交分配
func buildHallStats(roster *model.Roster, hall model.Hall, assignments []model.RosterAssignment) dto.HallStatsResponse {
	expected := 0
	if q := roster.QuotaFor(hall); q != nil {
		expected = q.TotalSeats
	}

	assigned, male, female := 0, 0, 0
	for i := range assignments {
		a := &assignments[i]
		if a.Hall != hall {
			continue
		}
		assigned++
		if a.User != nil {
			switch normalizeGender(a.User.Gender) {
			case model.GenderMale:
				male++
			case model.GenderFemale:
				female++
			}
		}
	}

	unassigned := expected - assigned
	if unassigned < 0 {
		unassigned = 0
	}

	var pctAssigned, pctUnassigned float64
	if expected > 0 {
		pctAssigned = float64(assigned) / float64(expected) * 100.0
		pctUnassigned = float64(unassigned) / float64(expected) * 100.0
	}

	return dto.HallStatsResponse{
		Hall:              string(hall),
		RosterID:          roster.RosterID,
		TotalExpected:     expected,
		TotalAssigned:     assigned,
		TotalUnassigned:   unassigned,
		PercentAssigned:   pctAssigned,
		PercentUnassigned: pctUnassigned,
		MaleCount:         male,
		FemaleCount:       female,
	}
}

// truncateToDate 去掉时间部分，仅保留日期参与窗口比较
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// toRosterResponse 转换排位表为响应
func toRosterResponse(roster *model.Roster) dto.RosterResponse {
	quotas := make([]dto.HallQuotaResponse, 0, len(roster.Quotas))
	for _, q := range roster.Quotas {
		quotas = append(quotas, dto.HallQuotaResponse{
			Hall:        string(q.Hall),
			TotalSeats:  q.TotalSeats,
			MaleSeats:   q.MaleSeats,
			FemaleSeats: q.FemaleSeats,
		})
	}
	return dto.RosterResponse{
		ID:             roster.RosterID,
		Name:           roster.Name,
		Year:           roster.Year,
		StartDate:      roster.StartDate.Format(dateLayout),
		EndDate:        roster.EndDate.Format(dateLayout),
		IsActive:       roster.IsActive,
		UseGenderQuota: roster.UseGenderQuota,
		AllowOverflow:  roster.AllowOverflow,
		Quotas:         quotas,
		CreatedAt:      roster.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      roster.UpdatedAt.Format(time.RFC3339),
	}
}
