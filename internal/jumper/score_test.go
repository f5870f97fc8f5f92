package jumper

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

func TestAdvanceSurvival(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := NewScorePolicy(&cfg)
	rs := &RunState{}

	for i := 1; i < 60; i++ {
		if p.AdvanceSurvival(rs) {
			t.Fatalf("point awarded after %d ticks", i)
		}
	}
	if !p.AdvanceSurvival(rs) {
		t.Fatal("no point after 60 ticks")
	}
	if rs.Score != 1 || rs.SurvivalTimer != 0 {
		t.Errorf("score=%d timer=%d, expected 1/0", rs.Score, rs.SurvivalTimer)
	}
}

func TestTargetLevel(t *testing.T) {
	tests := []struct {
		score, expected int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{2550, 2},
	}
	for _, tc := range tests {
		if got := TargetLevel(tc.score, 1000); got != tc.expected {
			t.Errorf("TargetLevel(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
	if TargetLevel(5000, 0) != 0 {
		t.Error("zero threshold should never level up")
	}
}

func TestEvaluateDifficultyNoChange(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := NewScorePolicy(&cfg)
	old := &Notice{Text: "x", TicksLeft: 5}
	rs := &RunState{Score: 1500, DifficultyLevel: 1, Notice: old}

	if ups := p.EvaluateDifficulty(rs); ups != 0 {
		t.Errorf("ups = %d, expected 0", ups)
	}
	if rs.Notice != old {
		t.Error("notice replaced without a level-up")
	}
}

func TestEvaluateDifficultyReplacesNotice(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := NewScorePolicy(&cfg)
	rs := &RunState{Score: 1000, Notice: &Notice{Text: "old", TicksLeft: 3}}

	p.EvaluateDifficulty(rs)

	if rs.Notice == nil || rs.Notice.Text != "SPEED UP!" || rs.Notice.TicksLeft != 120 {
		t.Errorf("Notice = %+v", rs.Notice)
	}
}

func TestAgeNotice(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := NewScorePolicy(&cfg)
	rs := &RunState{Notice: &Notice{Text: "SPEED UP!", TicksLeft: 120}}

	for i := 0; i < 119; i++ {
		p.AgeNotice(rs)
	}
	if rs.Notice == nil || rs.Notice.TicksLeft != 1 {
		t.Fatalf("Notice = %+v, expected one tick left", rs.Notice)
	}
	p.AgeNotice(rs)
	if rs.Notice != nil {
		t.Errorf("Notice = %+v, expected expired", rs.Notice)
	}

	p.AgeNotice(rs) // no notice is fine
}

func TestAwardCoin(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	p := NewScorePolicy(&cfg)
	rs := &RunState{Score: 7}

	p.AwardCoin(rs)
	p.AwardCoin(rs)

	if rs.Score != 207 || rs.CoinsCollected != 2 {
		t.Errorf("score=%d coins=%d", rs.Score, rs.CoinsCollected)
	}
}
