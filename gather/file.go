package gather

import (
	"context"
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/specerrors"
)

// batchFile is the on-disk shape of a pre-gathered metadata batch.
type batchFile struct {
	Resources []*resource.ResourceMetadata `yaml:"resources" json:"resources"`
}

// LoadBatch reads a metadata batch from a YAML or JSON file. Every resource
// in the file is recorded as a successful fetch.
func LoadBatch(path string) (Batch, error) {
	resources, err := loadResources(path)
	if err != nil {
		return nil, err
	}
	batch := make(Batch, len(resources))
	for _, meta := range resources {
		batch.Add(meta)
	}
	return batch, nil
}

func loadResources(path string) ([]*resource.ResourceMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gather: %w: reading batch file: %w", specerrors.ErrGather, err)
	}
	// YAML is a superset of JSON, one decoder covers both formats
	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("gather: %w: decoding batch file %s: %w", specerrors.ErrGather, path, err)
	}
	for _, meta := range file.Resources {
		if meta.Path == "" {
			return nil, fmt.Errorf("gather: %w: batch file %s declares a resource without a path", specerrors.ErrGather, path)
		}
	}
	return file.Resources, nil
}

// FileSource is a Source backed by a metadata batch file, useful for
// serving a document without a live resource registry.
type FileSource struct {
	resources map[string]*resource.ResourceMetadata
}

// NewFileSource loads a batch file into a FileSource.
func NewFileSource(path string) (*FileSource, error) {
	resources, err := loadResources(path)
	if err != nil {
		return nil, err
	}
	byPath := make(map[string]*resource.ResourceMetadata, len(resources))
	for _, meta := range resources {
		byPath[meta.Path] = meta
	}
	return &FileSource{resources: byPath}, nil
}

// List implements Source.
func (s *FileSource) List(_ context.Context) ([]string, error) {
	paths := make([]string, 0, len(s.resources))
	for path := range s.resources {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// Fetch implements Source.
func (s *FileSource) Fetch(_ context.Context, path string) (*resource.ResourceMetadata, error) {
	meta, ok := s.resources[path]
	if !ok {
		return nil, fmt.Errorf("gather: %w: unknown resource %s", specerrors.ErrGather, path)
	}
	return meta, nil
}
