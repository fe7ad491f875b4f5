package service

import (
	"math/rand"
	"strings"

	"github.com/BukiOffor/kud-server/internal/model"
)

// ── 选位层级 ──
//
// 层级逐级放宽：优先命中（开放 + 避开历史 + 性别子配额可用），
// 其次放弃性别子配额，再放弃历史排除，最后视超额策略兜底或判定未分配。

type assignTier int

const (
	tierUnassigned assignTier = iota // 席位耗尽且禁止超额
	tierPreferred                    // 开放 + 避开历史 + 性别子配额可用
	tierGenderRelaxed                // 开放 + 避开历史（忽略性别子配额）
	tierHistoryRelaxed               // 开放（忽略历史）
	tierOverflow                     // 全部场地兜底（超额）
)

// String 层级标签（用于激活结果汇总）
func (t assignTier) String() string {
	switch t {
	case tierPreferred:
		return "preferred"
	case tierGenderRelaxed:
		return "gender_relaxed"
	case tierHistoryRelaxed:
		return "history_relaxed"
	case tierOverflow:
		return "overflow"
	default:
		return "unassigned"
	}
}

// ── 容量面板 ──

// hallCapacity 单场地剩余席位
type hallCapacity struct {
	total       int
	male        int
	female      int
	trackMale   bool // 是否配置了男性子配额
	trackFemale bool
}

// capacityBoard 激活运行期间的内存容量面板
// 激活计算阶段只读写该面板，不触碰已持久化的分配行
type capacityBoard struct {
	slots       map[model.Hall]*hallCapacity
	genderAware bool
}

// newCapacityBoard 从排位表配额构建容量面板
// 未配置配额的场地视为 0 席
func newCapacityBoard(roster *model.Roster) *capacityBoard {
	board := &capacityBoard{
		slots:       make(map[model.Hall]*hallCapacity, len(model.AllHalls())),
		genderAware: roster.UseGenderQuota,
	}
	for _, hall := range model.AllHalls() {
		slot := &hallCapacity{}
		if q := roster.QuotaFor(hall); q != nil {
			slot.total = q.TotalSeats
			if q.MaleSeats != nil {
				slot.male = *q.MaleSeats
				slot.trackMale = true
			}
			if q.FemaleSeats != nil {
				slot.female = *q.FemaleSeats
				slot.trackFemale = true
			}
		}
		board.slots[hall] = slot
	}
	return board
}

// remaining 场地剩余总席位
func (b *capacityBoard) remaining(hall model.Hall) int {
	if c, ok := b.slots[hall]; ok {
		return c.total
	}
	return 0
}

// remainingForGender 场地在指定性别子配额下的剩余席位
// 未配置该性别子配额时不受约束，返回剩余总席位
func (b *capacityBoard) remainingForGender(hall model.Hall, gender string) int {
	c, ok := b.slots[hall]
	if !ok {
		return 0
	}
	switch gender {
	case model.GenderMale:
		if c.trackMale {
			return c.male
		}
	case model.GenderFemale:
		if c.trackFemale {
			return c.female
		}
	}
	return c.total
}

// consume 占用一个席位（饱和递减，不产生负数）
// 返回是否真实扣减了总席位；false 表示该场地已超额
func (b *capacityBoard) consume(hall model.Hall, gender string) bool {
	c, ok := b.slots[hall]
	if !ok {
		return false
	}
	seatTaken := c.total > 0
	if c.total > 0 {
		c.total--
	}
	switch gender {
	case model.GenderMale:
		if c.trackMale && c.male > 0 {
			c.male--
		}
	case model.GenderFemale:
		if c.trackFemale && c.female > 0 {
			c.female--
		}
	}
	return seatTaken
}

// openHalls 剩余总席位大于 0 的场地（固定顺序）
func (b *capacityBoard) openHalls() []model.Hall {
	var open []model.Hall
	for _, hall := range model.AllHalls() {
		if b.remaining(hall) > 0 {
			open = append(open, hall)
		}
	}
	return open
}

// ── 选位启发式 ──

// pickResult 单候选人的选位结果
type pickResult struct {
	hall     model.Hall
	tier     assignTier
	assigned bool
}

// normalizeGender 历史数据存在大小写混用，统一小写后比较；未知取值视为无性别
func normalizeGender(gender *string) string {
	if gender == nil {
		return ""
	}
	switch strings.ToLower(*gender) {
	case model.GenderMale:
		return model.GenderMale
	case model.GenderFemale:
		return model.GenderFemale
	}
	return ""
}

// pickHall 为单个候选人选择场地
//
// 层级顺序（同层级内等概率随机）：
//  1. 开放、避开历史、性别子配额可用
//  2. 开放、避开历史（忽略性别子配额）
//  3. 开放（忽略历史）
//  4. allowOverflow 时从全部场地兜底（超额），否则判定未分配
//
// 性别子配额仅在面板开启 genderAware 且候选人性别已知时参与过滤；
// 选中后由调用方负责 consume。
func pickHall(rng *rand.Rand, board *capacityBoard, gender string, history []model.Hall, allowOverflow bool) pickResult {
	served := make(map[model.Hall]bool, len(history))
	for _, h := range history {
		served[h] = true
	}

	open := board.openHalls()

	var fresh []model.Hall // 开放且避开历史
	for _, h := range open {
		if !served[h] {
			fresh = append(fresh, h)
		}
	}

	// 层级 1：性别子配额可用
	if board.genderAware && gender != "" {
		var preferred []model.Hall
		for _, h := range fresh {
			if board.remainingForGender(h, gender) > 0 {
				preferred = append(preferred, h)
			}
		}
		if len(preferred) > 0 {
			return pickResult{hall: preferred[rng.Intn(len(preferred))], tier: tierPreferred, assigned: true}
		}
	} else if len(fresh) > 0 {
		// 无性别维度时层级 1 与层级 2 等价
		return pickResult{hall: fresh[rng.Intn(len(fresh))], tier: tierPreferred, assigned: true}
	}

	// 层级 2：忽略性别子配额
	if len(fresh) > 0 {
		return pickResult{hall: fresh[rng.Intn(len(fresh))], tier: tierGenderRelaxed, assigned: true}
	}

	// 层级 3：忽略历史
	if len(open) > 0 {
		return pickResult{hall: open[rng.Intn(len(open))], tier: tierHistoryRelaxed, assigned: true}
	}

	// 层级 4：超额兜底或判定未分配
	if allowOverflow {
		all := model.AllHalls()
		return pickResult{hall: all[rng.Intn(len(all))], tier: tierOverflow, assigned: true}
	}

	return pickResult{tier: tierUnassigned}
}
