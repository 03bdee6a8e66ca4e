package collector

import (
	"fmt"

	"github.com/qepting91/linkpulse/internal/config"
	"github.com/qepting91/linkpulse/internal/domain"
)

// New selects the correct implementation based on the configured mode
func New(cfg config.Provider) (domain.Collector, error) {
	switch cfg.Mode {
	case config.ModeRapidAPI:
		return NewRapidAPIClient(cfg)
	case config.ModeMock:
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'rapidapi' or 'mock')", cfg.Mode)
	}
}
