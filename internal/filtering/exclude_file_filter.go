package filtering

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/report"
)

type excludeFileFilter struct {
	disabled bool
	reason   string
	path     string
}

// NewExcludeFile creates a filter that removes majors marked as not interesting
// in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, majors []catalog.MajorProfile) ([]catalog.MajorProfile, Step, error) {
	initial := len(majors)
	if f.path == "" {
		return majors, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	excluded, err := report.ExcludedFromFile(f.path)
	if err != nil {
		return majors, Step{}, fmt.Errorf("getting excluded majors from file: %w", err)
	}

	kept, removed := exclude(majors, excluded.Names())
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding majors based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_majors", removed),
			zap.Int("majors_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(removed), Left: len(kept)}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
