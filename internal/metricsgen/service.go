// Package metricsgen prints seven days of synthetic business metrics as
// one line of compact JSON.
package metricsgen

import (
	"context"
	"io"

	"github.com/tgberrios/DataSync/pkg/emit"
	"github.com/tgberrios/DataSync/pkg/logger"
	"github.com/tgberrios/DataSync/pkg/synth"

	"go.uber.org/zap"
)

// Service generates and emits the metric records.
type Service struct {
	logger *logger.Logger
	src    *synth.Source
	out    io.Writer
}

// NewService creates a metricsgen Service writing to out.
func NewService(l *logger.Logger, src *synth.Source, out io.Writer) *Service {
	return &Service{
		logger: l,
		src:    src,
		out:    out,
	}
}

// Run generates the records and writes them compactly.
func (s *Service) Run(ctx context.Context) error {
	metrics := synth.GenerateDailyMetrics(s.src)
	s.logger.Debug("generated daily metrics", zap.Int("count", len(metrics)))
	return emit.Compact(s.out, metrics)
}
