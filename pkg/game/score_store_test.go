package game

import "testing"

func TestGdataScoreStorePersistsBest(t *testing.T) {
	m := openTestStorage(t, "deepdive_test_scores")

	store := NewGdataScoreStore(m)
	if store.BestScore() != 0 {
		t.Fatalf("fresh store should start at 0, got %d", store.BestScore())
	}

	improved, err := store.SubmitScore(1500)
	if err != nil || !improved {
		t.Fatalf("first score should be saved: improved=%v err=%v", improved, err)
	}

	improved, err = store.SubmitScore(900)
	if err != nil || improved {
		t.Errorf("lower score must not replace best: improved=%v err=%v", improved, err)
	}

	reopened := NewGdataScoreStore(m)
	if reopened.BestScore() != 1500 {
		t.Errorf("expected persisted best 1500, got %d", reopened.BestScore())
	}
}

func TestScoreStoreDegradedAndMemory(t *testing.T) {
	stores := map[string]ScoreStore{
		"gdata nil": NewGdataScoreStore(nil),
		"memory":    &MemoryScoreStore{},
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if ok, err := store.SubmitScore(300); !ok || err != nil {
				t.Errorf("expected improvement, got ok=%v err=%v", ok, err)
			}
			if ok, _ := store.SubmitScore(300); ok {
				t.Error("equal score is not an improvement")
			}
			if store.BestScore() != 300 {
				t.Errorf("expected best 300, got %d", store.BestScore())
			}
		})
	}
}
