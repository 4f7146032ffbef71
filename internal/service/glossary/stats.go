package glossary

import (
	"context"
	"fmt"
)

// Stats reports the store footprint: term count, on-disk size, and usage
// relative to the configured capacity.
func (s *Service) Stats(ctx context.Context) (*StatsResult, error) {
	stats, err := s.terms.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("collection stats: %w", err)
	}

	result := &StatsResult{
		Terms:         stats.Terms,
		SizeBytes:     stats.SizeBytes,
		CapacityBytes: s.cfg.CapacityBytes,
	}
	if s.cfg.CapacityBytes > 0 {
		result.UsagePercent = float64(stats.SizeBytes) / float64(s.cfg.CapacityBytes) * 100
	}

	return result, nil
}
