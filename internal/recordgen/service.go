// Package recordgen prints ten synthetic item records as pretty-printed
// JSON.
package recordgen

import (
	"context"
	"io"
	"time"

	"github.com/tgberrios/DataSync/pkg/emit"
	"github.com/tgberrios/DataSync/pkg/logger"
	"github.com/tgberrios/DataSync/pkg/synth"

	"go.uber.org/zap"
)

// Service generates and emits the item records.
type Service struct {
	logger *logger.Logger
	src    *synth.Source
	now    func() time.Time
	out    io.Writer
}

// NewService creates a recordgen Service writing to out. now is the clock
// created_at offsets are taken from; pass time.Now outside tests.
func NewService(l *logger.Logger, src *synth.Source, now func() time.Time, out io.Writer) *Service {
	return &Service{
		logger: l,
		src:    src,
		now:    now,
		out:    out,
	}
}

// Run generates the records and writes them indented.
func (s *Service) Run(ctx context.Context) error {
	records := synth.GenerateItemRecords(s.src, s.now())
	s.logger.Debug("generated item records", zap.Int("count", len(records)))
	return emit.Pretty(s.out, records)
}
