package bidi

import (
	"sync"
	"testing"

	"github.com/fortytw2/leaktest"
)

// TestConcurrentResolutionLeavesNoGoroutines exercises §5's resource
// model claim: GetEmbeddingLevels is a pure function with no
// suspension points, so many concurrent calls over disjoint inputs
// must return without leaving any goroutines behind.
func TestConcurrentResolutionLeavesNoGoroutines(t *testing.T) {
	defer leaktest.Check(t)()

	inputs := []string{
		"abc",
		"ا ب ج",
		"A‮BC‬D",
		"(a)",
		"\U0001F600",
		"abc دع",
		"A⁦B⁩C",
	}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		s := inputs[i%len(inputs)]
		wg.Add(1)
		go func(s string) {
			defer wg.Done()
			result := GetEmbeddingLevels(s, Auto)
			_ = GetReorderedIndices(s, result, -1, -1)
			_ = GetMirroredCharactersMap(s, result, -1, -1)
		}(s)
	}
	wg.Wait()
}
