package highscore

import (
	"errors"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

// plainStore implements Store without Updater.
type plainStore struct {
	scores  []int
	saveErr error
}

func (p *plainStore) Load() []int { return append([]int{}, p.scores...) }

func (p *plainStore) Save(scores []int) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.scores = append([]int(nil), scores...)
	return nil
}

func TestRecordReadsCurrentRecord(t *testing.T) {
	newFile := func(t *testing.T) Store {
		f, err := NewFileStore(filepath.Join(t.TempDir(), "scores.txt"))
		if err != nil {
			t.Fatal(err)
		}
		return f
	}

	tests := []struct {
		name  string
		store func(t *testing.T) Store
	}{
		{"memory", func(*testing.T) Store { return NewMemoryStore() }},
		{"file", newFile},
		{"load and save", func(*testing.T) Store { return &plainStore{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.store(t)
			if err := s.Save([]int{500, 200}); err != nil {
				t.Fatal(err)
			}

			// Another game saves after this one loaded its copy
			if err := s.Save([]int{900, 500, 200}); err != nil {
				t.Fatal(err)
			}

			rank, scores, err := Record(s, 5, 300)
			if err != nil {
				t.Fatalf("Record() error: %v", err)
			}
			expected := []int{900, 500, 300, 200}
			if rank != 3 || !reflect.DeepEqual(scores, expected) {
				t.Errorf("Record() = %d, %v, expected 3, %v", rank, scores, expected)
			}
			if got := s.Load(); !reflect.DeepEqual(got, expected) {
				t.Errorf("stored = %v, expected %v", got, expected)
			}
		})
	}
}

func TestRecordTooLowForFullList(t *testing.T) {
	s := NewMemoryStore(50, 40, 30, 20, 10)

	rank, scores, err := Record(s, 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if rank != 0 || !reflect.DeepEqual(scores, []int{50, 40, 30, 20, 10}) {
		t.Errorf("Record() = %d, %v", rank, scores)
	}
}

func TestRecordSaveFailure(t *testing.T) {
	s := &plainStore{scores: []int{10}, saveErr: errors.New("read-only")}

	rank, scores, err := Record(s, 5, 20)
	if err == nil {
		t.Fatal("expected the save error")
	}
	if rank != 1 || !reflect.DeepEqual(scores, []int{20, 10}) {
		t.Errorf("Record() = %d, %v", rank, scores)
	}
	if got := s.Load(); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("stored = %v, failed save must not change it", got)
	}
}

func TestFileStoreConcurrentRecord(t *testing.T) {
	f, err := NewFileStore(filepath.Join(t.TempDir(), "scores.txt"))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, _, err := Record(f, 5, score*10); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	expected := []int{200, 190, 180, 170, 160}
	if got := f.Load(); !reflect.DeepEqual(got, expected) {
		t.Errorf("stored = %v, expected %v", got, expected)
	}
}
