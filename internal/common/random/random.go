package random

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/roshambo/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/roshambo/internal/common/random Picker

// Picker draws a hand for the "random" choice
type Picker interface {
	Choice() models.Choice
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultPicker draws hands from a seeded source
type DefaultPicker struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a picker, seeded from the clock unless cfg sets a seed
func New(cfg *Config) *DefaultPicker {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &DefaultPicker{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Choice returns one of the three hands uniformly
func (p *DefaultPicker) Choice() models.Choice {
	p.mu.Lock()
	defer p.mu.Unlock()

	return models.Choices[p.random.Intn(len(models.Choices))]
}
