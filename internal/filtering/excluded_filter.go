package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/major-advisor/internal/catalog"
)

type excludedFilter struct {
	disabled bool
	reason   string
	names    []string
}

// NewExcluded creates a filter that removes majors listed in catalog.exclude.
func NewExcluded() Filter {
	return &excludedFilter{}
}

func (f *excludedFilter) Name() string { return "excluded_majors" }

func (f *excludedFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludedFilter) IsEnabled() bool { return !f.disabled }

func (f *excludedFilter) Validate(cfg *Config) error {
	f.names = nil
	if cfg != nil {
		f.names = append(f.names, cfg.Exclude...)
	}
	return nil
}

func (f *excludedFilter) Apply(_ context.Context, deps Deps, majors []catalog.MajorProfile) ([]catalog.MajorProfile, Step, error) {
	initial := len(majors)
	if len(f.names) == 0 {
		return majors, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept, removed := exclude(majors, f.names)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding majors by config",
			zap.Strings("excluded_majors", removed),
			zap.Int("majors_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(removed), Left: len(kept)}, nil
}

func (f *excludedFilter) Status() Status {
	details := map[string]string{}
	if len(f.names) > 0 {
		details["majors"] = strings.Join(f.names, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
