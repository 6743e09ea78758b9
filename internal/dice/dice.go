package dice

import (
	"math/rand"
	"sync"
	"time"
)

// Roller is the source of randomness for card draws, sub-rolls and roster shuffles
//
//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/jetlag/internal/dice Roller
type Roller interface {
	// Roll returns a uniform value in 1..sides
	Roll(sides int) int

	// Shuffle permutes n elements using the provided swap function
	Shuffle(n int, swap func(i, j int))
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller provides dice rolling functionality
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &roller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// Shuffle randomizes the order of n elements
func (r *roller) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
