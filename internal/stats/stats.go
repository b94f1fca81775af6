// Package stats tracks per-category throughput counters across a
// decode run, keyed by category in a map rather than a fixed set of
// named fields, since this tool decodes ten categories at once.
package stats

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/kvitre/atxreplay/asterix"
)

// MessageStats tracks statistics about decoded ASTERIX objects.
type MessageStats struct {
	Total      int
	ByCategory map[asterix.Category]int
	ErrorCount int
	StartTime  time.Time
}

func NewMessageStats() *MessageStats {
	return &MessageStats{
		ByCategory: make(map[asterix.Category]int),
		StartTime:  time.Now(),
	}
}

// IncrementCategory records one decoded object of the given category.
func (s *MessageStats) IncrementCategory(cat asterix.Category) {
	s.Total++
	s.ByCategory[cat]++
}

// IncrementError records one record-level decode error that did not
// abort the stream.
func (s *MessageStats) IncrementError() {
	s.ErrorCount++
}

// LogStats logs current statistics. final adds a per-category
// percentage breakdown, suitable for an end-of-run summary.
func (s *MessageStats) LogStats(logger *slog.Logger, final bool) {
	if s.Total == 0 {
		return
	}

	duration := time.Since(s.StartTime)
	var rate float64
	if duration.Seconds() > 0 {
		rate = float64(s.Total) / duration.Seconds()
	}

	cats := make([]asterix.Category, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	args := []any{
		"duration", duration.Round(time.Second).String(),
		"total", s.Total,
		"errors", s.ErrorCount,
		"rate", fmt.Sprintf("%.1f msg/s", rate),
	}
	for _, c := range cats {
		count := s.ByCategory[c]
		if final {
			pct := float64(count) / float64(s.Total) * 100
			args = append(args, c.String(), fmt.Sprintf("%d (%.1f%%)", count, pct))
		} else {
			args = append(args, c.String(), count)
		}
	}

	if final {
		logger.Info("final statistics", args...)
	} else {
		logger.Info("statistics", args...)
	}
}
