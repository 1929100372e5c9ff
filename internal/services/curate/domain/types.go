// Package domain defines the core types and interfaces for the curate service
package domain

import (
	"maps"
	"time"

	"thaicurate/internal/core/corpus"
)

// Stats counts what happened to the candidates of one block or one run
type Stats struct {
	Blocks          int
	SkippedBlocks   int // below the Thai share threshold
	Candidates      int // sentences produced by segmentation
	Accepted        int // sentences accepted whole
	SalvageAttempts int
	SalvagedWords   int
	NoSurvivors     int
	MalformedSplits int
	Recanonicalized int // accepted units whose canonical form failed re-validation
	Rejections      map[string]int
}

// Reject counts one rejection under label
func (s *Stats) Reject(label string) {
	if s.Rejections == nil {
		s.Rejections = make(map[string]int)
	}
	s.Rejections[label]++
}

// Merge adds o into s
func (s *Stats) Merge(o Stats) {
	s.Blocks += o.Blocks
	s.SkippedBlocks += o.SkippedBlocks
	s.Candidates += o.Candidates
	s.Accepted += o.Accepted
	s.SalvageAttempts += o.SalvageAttempts
	s.SalvagedWords += o.SalvagedWords
	s.NoSurvivors += o.NoSurvivors
	s.MalformedSplits += o.MalformedSplits
	s.Recanonicalized += o.Recanonicalized
	if len(o.Rejections) > 0 && s.Rejections == nil {
		s.Rejections = make(map[string]int, len(o.Rejections))
	}
	for k, v := range o.Rejections {
		s.Rejections[k] += v
	}
}

// Clone returns a deep copy
func (s Stats) Clone() Stats {
	c := s
	c.Rejections = maps.Clone(s.Rejections)
	return c
}

// Report is the result of one run
type Report struct {
	RunID    string
	Corpus   *corpus.Set
	Stats    Stats
	Duration time.Duration
}

// Lines returns the accepted corpus, one sentence per entry
func (r Report) Lines() []string {
	if r.Corpus == nil {
		return nil
	}
	return r.Corpus.Lines()
}
