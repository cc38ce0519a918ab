package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/profile"
)

type streamFilter struct {
	disabled   bool
	reason     string
	streamOnly bool
}

// NewStream creates a filter keeping only majors open to the student's stream.
// Majors without a stream list are open to everyone.
func NewStream() Filter {
	return &streamFilter{}
}

func (f *streamFilter) Name() string { return "stream" }

func (f *streamFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *streamFilter) IsEnabled() bool { return !f.disabled }

func (f *streamFilter) Validate(cfg *Config) error {
	f.streamOnly = cfg != nil && cfg.StreamOnly
	return nil
}

func (f *streamFilter) Apply(_ context.Context, deps Deps, majors []catalog.MajorProfile) ([]catalog.MajorProfile, Step, error) {
	initial := len(majors)
	if !f.streamOnly || deps.Stream == "" {
		return majors, Step{Initial: initial, Left: initial}, nil
	}

	kept := make([]catalog.MajorProfile, 0, len(majors))
	var removed []string
	for _, major := range majors {
		if openTo(major, deps.Stream) {
			kept = append(kept, major)
			continue
		}
		removed = append(removed, major.Name)
	}

	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding majors outside the student stream",
			zap.String("stream", string(deps.Stream)),
			zap.Strings("excluded_majors", removed),
			zap.Int("majors_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(removed), Left: len(kept)}, nil
}

func (f *streamFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"stream_only": strconv.FormatBool(f.streamOnly)},
	}
}

func openTo(major catalog.MajorProfile, stream profile.Stream) bool {
	if len(major.Streams) == 0 {
		return true
	}
	for _, raw := range major.Streams {
		if s, err := profile.ParseStream(raw); err == nil && s == stream {
			return true
		}
	}
	return false
}
