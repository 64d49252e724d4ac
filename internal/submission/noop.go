package submission

import (
	"context"
	"log/slog"

	"github.com/northwind-studio/website/internal/config"
	"github.com/northwind-studio/website/pkg/logger"
)

// NoopSubmitter logs the enquiry and acknowledges it. Used in development.
type NoopSubmitter struct {
	log *slog.Logger
}

func NewNoopSubmitter(log *slog.Logger) *NoopSubmitter {
	return &NoopSubmitter{log: log.With(logger.Scope("submission.noop"))}
}

func (s *NoopSubmitter) Transport() string { return config.TransportNoop }

func (s *NoopSubmitter) Submit(ctx context.Context, fields Fields) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, err
	}
	enquiry := newEnquiry(fields)
	s.log.Info("enquiry received (no-op)",
		slog.String("enquiry_id", enquiry.ID),
		slog.String("email", fields["email"]),
		slog.Int("fields", len(fields)))
	return Ack{ID: enquiry.ID, Transport: s.Transport(), Reference: "noop-" + enquiry.ID}, nil
}
