// Package fetcher orchestrates the remote record fetch: one GET, project
// the first five users, print the result as one line of compact JSON.
package fetcher

import (
	"context"
	"io"

	"github.com/tgberrios/DataSync/pkg/emit"
	"github.com/tgberrios/DataSync/pkg/logger"
	"github.com/tgberrios/DataSync/pkg/projection"

	"go.uber.org/zap"
)

// Getter is the outbound edge of the service.
type Getter interface {
	Get(ctx context.Context) ([]byte, error)
}

// ErrorRecord is the single-element failure output shape.
type ErrorRecord struct {
	Error string `json:"error"`
}

// Service wires the fetch pipeline together.
type Service struct {
	logger *logger.Logger
	getter Getter
	limit  int
	out    io.Writer
}

// NewService creates a fetcher Service writing its JSON document to out.
func NewService(l *logger.Logger, g Getter, limit int, out io.Writer) *Service {
	return &Service{
		logger: l,
		getter: g,
		limit:  limit,
		out:    out,
	}
}

// Run fetches, projects and emits. Any fetch or projection failure is
// converted into the one-element error array; the returned error only
// reports a failure to write the document itself.
func (s *Service) Run(ctx context.Context) error {
	records, err := s.fetch(ctx)
	if err != nil {
		s.logger.Error("fetch failed, emitting error record", err)
		return emit.Compact(s.out, []ErrorRecord{{Error: err.Error()}})
	}

	s.logger.Debug("fetched user records", zap.Int("count", len(records)))
	return emit.Compact(s.out, records)
}

func (s *Service) fetch(ctx context.Context) ([]projection.UserRecord, error) {
	body, err := s.getter.Get(ctx)
	if err != nil {
		return nil, err
	}
	return projection.ProjectUsers(body, s.limit)
}
