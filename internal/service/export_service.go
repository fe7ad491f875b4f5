package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BukiOffor/kud-server/internal/model"
	"github.com/BukiOffor/kud-server/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoAssignments = errors.New("该排位表暂无分配记录")
	ErrExportGenerateFail  = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 排位表分配明细导出为 Excel (.xlsx)，可按场地过滤
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Excel 格式：按场地分 Sheet，每行一名成员
type ExportService interface {
	// ExportRoster 导出排位表分配明细为 Excel
	ExportRoster(ctx context.Context, rosterID string, hall *string, callerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportRoster — 导出排位表分配明细为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 每个场地一个 Sheet（指定场地过滤时仅一个）
//   - 列头：序号 | 姓名 | 注册号 | 性别 | 场地
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportRoster(ctx context.Context, rosterID string, hall *string, callerID string) (*bytes.Buffer, string, error) {
	// 1. 查询排位表
	roster, err := s.repo.Roster.GetByID(ctx, rosterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrRosterNotFound
		}
		s.logger.Error("查询排位表失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 校验并解析场地过滤
	var hallFilter *model.Hall
	if hall != nil {
		h := model.Hall(*hall)
		if !h.Valid() {
			return nil, "", ErrInvalidHall
		}
		hallFilter = &h
	}

	// 3. 查询分配明细
	assignments, err := s.repo.Assignment.ListByRoster(ctx, rosterID, hallFilter)
	if err != nil {
		s.logger.Error("查询分配明细失败", zap.Error(err))
		return nil, "", err
	}
	if len(assignments) == 0 {
		return nil, "", ErrExportNoAssignments
	}

	// 4. 按场地分组（保持固定场地顺序）
	byHall := make(map[model.Hall][]*model.RosterAssignment)
	for i := range assignments {
		a := &assignments[i]
		byHall[a.Hall] = append(byHall[a.Hall], a)
	}

	halls := model.AllHalls()
	if hallFilter != nil {
		halls = []model.Hall{*hallFilter}
	}

	// 5. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	created := 0
	for _, h := range halls {
		group := byHall[h]
		if len(group) == 0 {
			continue
		}

		sheetName := string(h)
		idx, err := f.NewSheet(sheetName)
		if err != nil {
			continue
		}
		if created == 0 {
			f.SetActiveSheet(idx)
		}
		created++

		f.SetColWidth(sheetName, "A", "A", 8)
		f.SetColWidth(sheetName, "B", "B", 24)
		f.SetColWidth(sheetName, "C", "C", 16)
		f.SetColWidth(sheetName, "D", "D", 10)
		f.SetColWidth(sheetName, "E", "E", 14)

		// 标题行
		f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — %s", roster.Name, h))
		f.MergeCell(sheetName, "A1", "E1")
		f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

		// 表头
		f.SetCellValue(sheetName, cell("A", 2), "序号")
		f.SetCellValue(sheetName, cell("B", 2), "姓名")
		f.SetCellValue(sheetName, cell("C", 2), "注册号")
		f.SetCellValue(sheetName, cell("D", 2), "性别")
		f.SetCellValue(sheetName, cell("E", 2), "场地")

		// 数据行
		row := 3
		for i, a := range group {
			f.SetCellValue(sheetName, cell("A", row), i+1)
			if a.User != nil {
				f.SetCellValue(sheetName, cell("B", row), a.User.FullName())
				f.SetCellValue(sheetName, cell("C", row), a.User.RegNo)
				f.SetCellValue(sheetName, cell("D", row), normalizeGender(a.User.Gender))
			}
			f.SetCellValue(sheetName, cell("E", row), string(a.Hall))
			row++
		}
	}
	f.DeleteSheet("Sheet1")

	// 6. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	// 7. 尽力而为写入审计日志
	targetType := "Roster"
	if err := s.repo.ActivityLog.Create(ctx, &model.ActivityLog{
		Action:     model.ActionRosterExported,
		ActorID:    callerID,
		TargetID:   &roster.RosterID,
		TargetType: &targetType,
	}); err != nil {
		s.logger.Warn("审计日志写入失败",
			zap.String("action", model.ActionRosterExported),
			zap.Error(err),
		)
	}

	filename := fmt.Sprintf("排位表_%s.xlsx", roster.Name)
	return buf, filename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
