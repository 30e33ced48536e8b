package writer

import (
	"sync"

	"github.com/ajesh05js/pravega/errors"
)

// Holder provides thread-safe access to the current writer configuration.
// Individual Configs are immutable; the holder only guards the reference,
// so a reload is a Load followed by Swap and readers always observe either
// the old bundle or the new one in full.
type Holder struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewHolder creates a holder seeded with an initial configuration
func NewHolder(cfg *Config) (*Holder, error) {
	if cfg == nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "Holder", "NewHolder", "seed config")
	}
	return &Holder{cfg: cfg}, nil
}

// Get returns the current configuration. The returned Config is immutable
// and safe to retain across a later Swap.
func (h *Holder) Get() *Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

// Swap atomically replaces the current configuration and returns the
// previous one. Only fully constructed Configs may be swapped in; a nil
// config is rejected so readers can never observe an absent bundle.
func (h *Holder) Swap(cfg *Config) (*Config, error) {
	if cfg == nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "Holder", "Swap", "replace config")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.cfg
	h.cfg = cfg
	return prev, nil
}
