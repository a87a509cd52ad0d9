package adapter

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/grouplist/internal/model"
)

// GroupStore persists and retrieves group files.
type GroupStore interface {
	Load(ctx context.Context, paths ...m.Path) ([]m.Group, error)
	Save(path m.Path, groups []m.Group) error
}

// groupFile is the on-disk YAML layout of a group file.
type groupFile struct {
	Groups []m.Group `yaml:"groups"`
}

// LocalGroupStore reads and writes group files on the local filesystem.
type LocalGroupStore struct{}

// NewGroupStore constructs a GroupStore implementation.
func NewGroupStore() GroupStore {
	return &LocalGroupStore{}
}

// Load reads every file concurrently and concatenates their groups in
// argument order.
func (s *LocalGroupStore) Load(ctx context.Context, paths ...m.Path) ([]m.Group, error) {
	loaded := make([][]m.Group, len(paths))

	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			groups, err := s.loadFile(path)
			if err != nil {
				return err
			}

			loaded[i] = groups

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var groups []m.Group
	for _, part := range loaded {
		groups = append(groups, part...)
	}

	return groups, nil
}

// Save writes groups to path as YAML.
func (s *LocalGroupStore) Save(path m.Path, groups []m.Group) error {
	data, err := yaml.Marshal(groupFile{Groups: groups})
	if err != nil {
		return fmt.Errorf("failed to encode groups: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (s *LocalGroupStore) loadFile(path m.Path) ([]m.Group, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file groupFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return file.Groups, nil
}
