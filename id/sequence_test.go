package id

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jt0/varasto/_test/assert"
)

func TestSequence_StartsAtOne(t *testing.T) {
	var s Sequence

	assert.Equals(t, Uint(1), s.Peek())
	assert.Equals(t, Uint(1), s.Next())
	assert.Equals(t, Uint(2), s.Next())
	assert.Equals(t, Uint(3), s.Peek())
}

func TestSequence_ConcurrentNextIsUnique(t *testing.T) {
	const goroutines, perGoroutine = 8, 100

	var s Sequence
	var mu sync.Mutex
	seen := make(map[Uint]bool)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				next := s.Next()
				mu.Lock()
				seen[next] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equals(t, goroutines*perGoroutine, len(seen))
	assert.Equals(t, Uint(goroutines*perGoroutine+1), s.Peek())
}

func TestParseUint(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Uint
		wantErr bool
	}{
		{"one", "1", 1, false},
		{"large", "4096", 4096, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"alpha", "abc", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ge := ParseUint(tt.input)
			if tt.wantErr {
				assert.Error(t, ge)
				return
			}
			assert.Success(t, ge)
			assert.Equals(t, tt.want, got)
		})
	}
}

func TestUint_Format(t *testing.T) {
	assert.Equals(t, "7", Uint(7).String())
	assert.Equals(t, "007", fmt.Sprintf("%3v", Uint(7)))
	assert.Equals(t, "12", fmt.Sprint(Uint(12)))
}
