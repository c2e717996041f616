package storage

import "testing"

func TestScoreKeeperSubmit(t *testing.T) {
	sk := NewScoreKeeper(nil)

	tests := []struct {
		score      int
		wantRecord bool
		wantBest   int
	}{
		{0, false, 0},
		{3, true, 3},
		{2, false, 3},
		{3, false, 3},
		{7, true, 7},
	}

	for _, tt := range tests {
		if got := sk.Submit(tt.score); got != tt.wantRecord {
			t.Errorf("Submit(%d) = %v, want %v", tt.score, got, tt.wantRecord)
		}
		if sk.Best() != tt.wantBest {
			t.Errorf("after Submit(%d) best = %d, want %d", tt.score, sk.Best(), tt.wantBest)
		}
	}

	if sk.record.Played != len(tests) {
		t.Errorf("played = %d, want %d", sk.record.Played, len(tests))
	}
}

// TestScoreKeeperPersists 测试最高分跨实例保存
func TestScoreKeeperPersists(t *testing.T) {
	gdataManager := newTestGdata(t, "test_flappy_scores")

	sk1 := NewScoreKeeper(gdataManager)
	sk1.Submit(12)

	sk2 := NewScoreKeeper(gdataManager)
	if sk2.Best() != 12 {
		t.Errorf("Best() after reload = %d, want 12", sk2.Best())
	}
	if sk2.record.Played != 1 {
		t.Errorf("played after reload = %d, want 1", sk2.record.Played)
	}
}
