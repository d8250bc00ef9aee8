package selector

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/aashari/go-image-analysis-api/internal/config"
)

// Selector chooses which credential a request should use
type Selector interface {
	Select(creds []config.Credential) (*config.Credential, error)
}

// RandomSelector spreads requests evenly across the configured API keys.
// Select is called from concurrent request goroutines, so access to the
// unsynchronized rand.Rand goes through a mutex.
type RandomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSelector creates a new random selector
func NewRandomSelector() *RandomSelector {
	// math/rand is fine here; key selection is not security-critical
	return &RandomSelector{
		rng: rand.New(rand.NewSource(rand.Int63())),
	}
}

// Select randomly picks one of the available credentials
func (s *RandomSelector) Select(creds []config.Credential) (*config.Credential, error) {
	if len(creds) == 0 {
		return nil, fmt.Errorf("no credentials available")
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(creds))
	s.mu.Unlock()

	selected := creds[idx]
	return &selected, nil
}
