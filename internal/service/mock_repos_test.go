package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BukiOffor/kud-server/internal/model"
	"github.com/BukiOffor/kud-server/internal/repository"
)

// ── 测试辅助：内存 Mock Repository ──

// testRepos 聚合所有 mock repo 便于 seed 数据
type testRepos struct {
	user        *mockUserRepo
	roster      *mockRosterRepo
	assignment  *mockAssignmentRepo
	activityLog *mockActivityLogRepo
}

func newTestRepos() *testRepos {
	user := newMockUserRepo()
	return &testRepos{
		user:        user,
		roster:      newMockRosterRepo(),
		assignment:  newMockAssignmentRepo(user),
		activityLog: newMockActivityLogRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	repo := &repository.Repository{
		User:        r.user,
		Roster:      r.roster,
		Assignment:  r.assignment,
		ActivityLog: r.activityLog,
	}
	repo.Tx = &mockTxManager{repo: repo}
	return repo
}

// mockTxManager 直接以同一组 mock repo 执行回调（无真实事务语义）
type mockTxManager struct {
	repo *repository.Repository
}

func (m *mockTxManager) Transaction(ctx context.Context, fn func(repo *repository.Repository) error) error {
	return fn(m.repo)
}

// ════════════════════════════════════════════════════════════
// mockUserRepo
// ════════════════════════════════════════════════════════════

type mockUserRepo struct {
	users []*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range m.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByRegNo(ctx context.Context, regNo string) (*model.User, error) {
	for _, u := range m.users {
		if u.RegNo == regNo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(ctx context.Context, offset, limit int) ([]model.User, int64, error) {
	total := int64(len(m.users))
	var result []model.User
	for i := offset; i < len(m.users) && len(result) < limit; i++ {
		result = append(result, *m.users[i])
	}
	return result, total, nil
}

func (m *mockUserRepo) ListActive(ctx context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.IsActive {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	for i, u := range m.users {
		if u.UserID == user.UserID {
			m.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateCurrentHall(ctx context.Context, userID string, hall model.Hall) error {
	for _, u := range m.users {
		if u.UserID == userID {
			h := hall
			u.CurrentHall = &h
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) SetActive(ctx context.Context, userID string, active bool) error {
	for _, u := range m.users {
		if u.UserID == userID {
			u.IsActive = active
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	for i, u := range m.users {
		if u.UserID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ════════════════════════════════════════════════════════════
// mockRosterRepo
// ════════════════════════════════════════════════════════════

type mockRosterRepo struct {
	rosters map[string]*model.Roster
	seq     int
}

func newMockRosterRepo() *mockRosterRepo {
	return &mockRosterRepo{rosters: make(map[string]*model.Roster)}
}

func (m *mockRosterRepo) Create(ctx context.Context, roster *model.Roster) error {
	m.seq++
	if roster.RosterID == "" {
		roster.RosterID = fmt.Sprintf("roster-%d", m.seq)
	}
	for i := range roster.Quotas {
		roster.Quotas[i].RosterID = roster.RosterID
	}
	m.rosters[roster.RosterID] = roster
	return nil
}

func (m *mockRosterRepo) GetByID(ctx context.Context, id string) (*model.Roster, error) {
	if r, ok := m.rosters[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRosterRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.Roster, error) {
	return m.GetByID(ctx, id)
}

func (m *mockRosterRepo) FindActive(ctx context.Context) (*model.Roster, error) {
	for _, r := range m.rosters {
		if r.IsActive {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockRosterRepo) List(ctx context.Context) ([]model.Roster, error) {
	var result []model.Roster
	for _, r := range m.rosters {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRosterRepo) Update(ctx context.Context, roster *model.Roster) error {
	if _, ok := m.rosters[roster.RosterID]; !ok {
		return gorm.ErrRecordNotFound
	}
	roster.Version++
	m.rosters[roster.RosterID] = roster
	return nil
}

func (m *mockRosterRepo) ReplaceQuotas(ctx context.Context, rosterID string, quotas []model.RosterQuota) error {
	r, ok := m.rosters[rosterID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range quotas {
		quotas[i].RosterID = rosterID
	}
	r.Quotas = quotas
	return nil
}

func (m *mockRosterRepo) SetActive(ctx context.Context, rosterID string, active bool) error {
	r, ok := m.rosters[rosterID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.IsActive = active
	return nil
}

func (m *mockRosterRepo) Delete(ctx context.Context, id string) error {
	delete(m.rosters, id)
	return nil
}

// ════════════════════════════════════════════════════════════
// mockAssignmentRepo
// ════════════════════════════════════════════════════════════

type mockAssignmentRepo struct {
	assignments []model.RosterAssignment
	users       *mockUserRepo // 用于回填 User 关联
	seq         int
}

func newMockAssignmentRepo(users *mockUserRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{users: users}
}

func (m *mockAssignmentRepo) hydrate(a model.RosterAssignment) model.RosterAssignment {
	if u, err := m.users.GetByID(context.Background(), a.UserID); err == nil {
		a.User = u
	}
	return a
}

func (m *mockAssignmentRepo) BatchCreate(ctx context.Context, assignments []model.RosterAssignment) error {
	for _, a := range assignments {
		if err := m.Create(ctx, &a); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockAssignmentRepo) Create(ctx context.Context, assignment *model.RosterAssignment) error {
	m.seq++
	if assignment.AssignmentID == "" {
		assignment.AssignmentID = fmt.Sprintf("asg-%d", m.seq)
	}
	m.assignments = append(m.assignments, *assignment)
	return nil
}

func (m *mockAssignmentRepo) GetByID(ctx context.Context, id string) (*model.RosterAssignment, error) {
	for i := range m.assignments {
		if m.assignments[i].AssignmentID == id {
			a := m.hydrate(m.assignments[i])
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) DeleteByRoster(ctx context.Context, rosterID string) error {
	var kept []model.RosterAssignment
	for _, a := range m.assignments {
		if a.RosterID != rosterID {
			kept = append(kept, a)
		}
	}
	m.assignments = kept
	return nil
}

func (m *mockAssignmentRepo) ListByRoster(ctx context.Context, rosterID string, hall *model.Hall) ([]model.RosterAssignment, error) {
	var result []model.RosterAssignment
	for _, a := range m.assignments {
		if a.RosterID != rosterID {
			continue
		}
		if hall != nil && a.Hall != *hall {
			continue
		}
		result = append(result, m.hydrate(a))
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListByUser(ctx context.Context, userID string) ([]model.RosterAssignment, error) {
	var result []model.RosterAssignment
	for i := len(m.assignments) - 1; i >= 0; i-- {
		if m.assignments[i].UserID == userID {
			result = append(result, m.assignments[i])
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) RecentHalls(ctx context.Context, userID, year string, limit int) ([]model.Hall, error) {
	var halls []model.Hall
	for i := len(m.assignments) - 1; i >= 0 && len(halls) < limit; i-- {
		a := m.assignments[i]
		if a.UserID == userID && a.Year == year {
			halls = append(halls, a.Hall)
		}
	}
	return halls, nil
}

func (m *mockAssignmentRepo) UpdateHall(ctx context.Context, assignmentID string, hall model.Hall) error {
	for i := range m.assignments {
		if m.assignments[i].AssignmentID == assignmentID {
			m.assignments[i].Hall = hall
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ════════════════════════════════════════════════════════════
// mockActivityLogRepo
// ════════════════════════════════════════════════════════════

type mockActivityLogRepo struct {
	logs []model.ActivityLog
}

func newMockActivityLogRepo() *mockActivityLogRepo {
	return &mockActivityLogRepo{}
}

func (m *mockActivityLogRepo) Create(ctx context.Context, log *model.ActivityLog) error {
	if log.LogID == "" {
		log.LogID = fmt.Sprintf("log-%d", len(m.logs)+1)
	}
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockActivityLogRepo) List(ctx context.Context, offset, limit int) ([]model.ActivityLog, int64, error) {
	total := int64(len(m.logs))
	var result []model.ActivityLog
	for i := offset; i < len(m.logs) && len(result) < limit; i++ {
		result = append(result, m.logs[i])
	}
	return result, total, nil
}
