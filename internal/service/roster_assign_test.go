package service

import (
	"math/rand"
	"testing"

	"github.com/BukiOffor/kud-server/internal/model"
)

func intPtr(n int) *int { return &n }

func newTestBoard(genderAware bool, quotas ...model.RosterQuota) *capacityBoard {
	roster := &model.Roster{UseGenderQuota: genderAware, Quotas: quotas}
	return newCapacityBoard(roster)
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// ════════════════════════════════════════════════════════════
// capacityBoard 测试
// ════════════════════════════════════════════════════════════

func TestCapacityBoard_UnconfiguredHallHasZeroSeats(t *testing.T) {
	board := newTestBoard(false,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 3},
	)

	if got := board.remaining(model.HallMainHall); got != 3 {
		t.Errorf("期望 main_hall 剩余 3，实际=%d", got)
	}
	if got := board.remaining(model.HallGallery); got != 0 {
		t.Errorf("未配置场地应为 0 席，实际=%d", got)
	}
}

func TestCapacityBoard_ConsumeSaturates(t *testing.T) {
	board := newTestBoard(false,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 1},
	)

	if !board.consume(model.HallMainHall, "") {
		t.Error("首次 consume 应扣减成功")
	}
	if board.consume(model.HallMainHall, "") {
		t.Error("席位耗尽后 consume 应返回 false")
	}
	if got := board.remaining(model.HallMainHall); got != 0 {
		t.Errorf("剩余席位不应为负数，实际=%d", got)
	}
}

func TestCapacityBoard_GenderSubQuota(t *testing.T) {
	board := newTestBoard(true,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 3, MaleSeats: intPtr(1)},
	)

	// 男性子配额受限，女性未配置子配额 → 不受约束
	if got := board.remainingForGender(model.HallMainHall, model.GenderMale); got != 1 {
		t.Errorf("期望男性剩余 1，实际=%d", got)
	}
	if got := board.remainingForGender(model.HallMainHall, model.GenderFemale); got != 3 {
		t.Errorf("未配置女性子配额应返回总剩余 3，实际=%d", got)
	}

	board.consume(model.HallMainHall, model.GenderMale)
	if got := board.remainingForGender(model.HallMainHall, model.GenderMale); got != 0 {
		t.Errorf("消费后男性剩余应为 0，实际=%d", got)
	}
	if got := board.remaining(model.HallMainHall); got != 2 {
		t.Errorf("消费后总剩余应为 2，实际=%d", got)
	}
}

func TestCapacityBoard_OpenHalls(t *testing.T) {
	board := newTestBoard(false,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 1},
		model.RosterQuota{Hall: model.HallBasement, TotalSeats: 2},
	)

	open := board.openHalls()
	if len(open) != 2 {
		t.Fatalf("期望 2 个开放场地，实际=%d", len(open))
	}

	board.consume(model.HallMainHall, "")
	open = board.openHalls()
	if len(open) != 1 || open[0] != model.HallBasement {
		t.Errorf("main_hall 耗尽后应只剩 basement，实际=%v", open)
	}
}

// ════════════════════════════════════════════════════════════
// normalizeGender 测试
// ════════════════════════════════════════════════════════════

func TestNormalizeGender(t *testing.T) {
	male := "Male"
	female := "FEMALE"
	unknown := "other"

	if got := normalizeGender(nil); got != "" {
		t.Errorf("nil 应归一化为空串，实际=%q", got)
	}
	if got := normalizeGender(&male); got != model.GenderMale {
		t.Errorf("Male 应归一化为 male，实际=%q", got)
	}
	if got := normalizeGender(&female); got != model.GenderFemale {
		t.Errorf("FEMALE 应归一化为 female，实际=%q", got)
	}
	if got := normalizeGender(&unknown); got != "" {
		t.Errorf("未知取值应归一化为空串，实际=%q", got)
	}
}

// ════════════════════════════════════════════════════════════
// pickHall 测试
// ════════════════════════════════════════════════════════════

func TestPickHall_PreferredAvoidsHistory(t *testing.T) {
	board := newTestBoard(false,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 5},
		model.RosterQuota{Hall: model.HallGallery, TotalSeats: 5},
	)
	history := []model.Hall{model.HallMainHall}

	rng := testRNG()
	for i := 0; i < 20; i++ {
		result := pickHall(rng, board, "", history, true)
		if !result.assigned {
			t.Fatal("开放席位充足时应分配成功")
		}
		if result.hall != model.HallGallery {
			t.Fatalf("应避开历史场地 main_hall，实际=%s", result.hall)
		}
		if result.tier != tierPreferred {
			t.Fatalf("期望 preferred 层级，实际=%s", result.tier)
		}
	}
}

func TestPickHall_GenderQuotaSteersPick(t *testing.T) {
	// main_hall 男性子配额 0，gallery 男性子配额 1：男性候选人应被引导至 gallery
	board := newTestBoard(true,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 2, MaleSeats: intPtr(0), FemaleSeats: intPtr(2)},
		model.RosterQuota{Hall: model.HallGallery, TotalSeats: 2, MaleSeats: intPtr(1), FemaleSeats: intPtr(1)},
	)

	result := pickHall(testRNG(), board, model.GenderMale, nil, true)
	if !result.assigned {
		t.Fatal("应分配成功")
	}
	if result.hall != model.HallGallery {
		t.Errorf("男性候选人应被分配到 gallery，实际=%s", result.hall)
	}
	if result.tier != tierPreferred {
		t.Errorf("期望 preferred 层级，实际=%s", result.tier)
	}
}

func TestPickHall_GenderRelaxedWhenSubQuotaExhausted(t *testing.T) {
	// 所有场地男性子配额为 0，但总席位仍开放 → 放宽性别子配额
	board := newTestBoard(true,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 2, MaleSeats: intPtr(0), FemaleSeats: intPtr(2)},
	)

	result := pickHall(testRNG(), board, model.GenderMale, nil, true)
	if !result.assigned {
		t.Fatal("总席位开放时应分配成功")
	}
	if result.hall != model.HallMainHall {
		t.Errorf("期望 main_hall，实际=%s", result.hall)
	}
	if result.tier != tierGenderRelaxed {
		t.Errorf("期望 gender_relaxed 层级，实际=%s", result.tier)
	}
}

func TestPickHall_HistoryRelaxedWhenAllServed(t *testing.T) {
	board := newTestBoard(false,
		model.RosterQuota{Hall: model.HallBasement, TotalSeats: 1},
	)
	history := []model.Hall{model.HallBasement}

	result := pickHall(testRNG(), board, "", history, true)
	if !result.assigned {
		t.Fatal("应分配成功")
	}
	if result.hall != model.HallBasement {
		t.Errorf("唯一开放场地为 basement，实际=%s", result.hall)
	}
	if result.tier != tierHistoryRelaxed {
		t.Errorf("期望 history_relaxed 层级，实际=%s", result.tier)
	}
}

func TestPickHall_OverflowWhenExhausted(t *testing.T) {
	board := newTestBoard(false,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 0},
	)

	result := pickHall(testRNG(), board, "", nil, true)
	if !result.assigned {
		t.Fatal("允许超额时应兜底分配")
	}
	if result.tier != tierOverflow {
		t.Errorf("期望 overflow 层级，实际=%s", result.tier)
	}
	if !result.hall.Valid() {
		t.Errorf("兜底场地应合法，实际=%s", result.hall)
	}
}

func TestPickHall_UnassignedWhenOverflowDisabled(t *testing.T) {
	board := newTestBoard(false,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 0},
	)

	result := pickHall(testRNG(), board, "", nil, false)
	if result.assigned {
		t.Errorf("禁止超额且席位耗尽时不应分配，实际分配到=%s", result.hall)
	}
	if result.tier != tierUnassigned {
		t.Errorf("期望 unassigned 层级，实际=%s", result.tier)
	}
}

func TestPickHall_PickStaysWithinOpenSet(t *testing.T) {
	board := newTestBoard(false,
		model.RosterQuota{Hall: model.HallMainHall, TotalSeats: 3},
		model.RosterQuota{Hall: model.HallGallery, TotalSeats: 3},
		model.RosterQuota{Hall: model.HallOutside, TotalSeats: 3},
	)
	allowed := map[model.Hall]bool{
		model.HallMainHall: true,
		model.HallGallery:  true,
		model.HallOutside:  true,
	}

	rng := testRNG()
	for i := 0; i < 50; i++ {
		result := pickHall(rng, board, "", nil, true)
		if !result.assigned {
			t.Fatal("应分配成功")
		}
		if !allowed[result.hall] {
			t.Fatalf("分配结果超出开放集合：%s", result.hall)
		}
	}
}
