package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"
)

// ExcludedMajors is the content of the exclude file.
type ExcludedMajors struct {
	Items []*ExcludedMajor
}

type ExcludedMajor struct {
	Name       string
	Reason     string
	ExcludedAt time.Time
}

// ExcludedFromFile reads path. A missing or empty file yields an empty list.
func ExcludedFromFile(path string) (*ExcludedMajors, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedMajors{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedMajors{}, nil
	}

	var excluded ExcludedMajors
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

// Exclude returns a list marking the given majors as not interesting.
func Exclude(reason string, majors ...string) *ExcludedMajors {
	excluded := &ExcludedMajors{}
	for _, name := range majors {
		excluded.Items = append(excluded.Items, &ExcludedMajor{
			Name:       strings.TrimSpace(name),
			Reason:     reason,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

func (e *ExcludedMajors) Append(s *ExcludedMajors) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedMajors) Names() []string {
	names := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		names = append(names, item.Name)
	}
	return names
}

// ToFile overwrites path with the list.
func (e *ExcludedMajors) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// AppendToFile adds majors to the exclude file at path.
func AppendToFile(path, reason string, majors ...string) error {
	existing, err := ExcludedFromFile(path)
	if err != nil {
		return err
	}
	existing.Append(Exclude(reason, majors...))
	return existing.ToFile(path)
}
