package search

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(*settings)

type settings struct {
	maxExpansions int
	logger        zerolog.Logger
}

func defaultSettings() settings {
	return settings{logger: log.Logger}
}

// WithMaxExpansions aborts the search with ErrExpansionLimit after n states
// have been expanded. Zero or negative means unlimited.
func WithMaxExpansions(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxExpansions = n
		}
	}
}

// WithLogger replaces the global logger for this search.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
