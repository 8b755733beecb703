package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-track/internal/filter"
	"github.com/MKhiriev/go-track/internal/logger"
	"github.com/MKhiriev/go-track/internal/source"
	"github.com/MKhiriev/go-track/models"
)

// memorySource is an in-memory ConfigurationSource.
type memorySource struct {
	name      string
	available bool
	props     map[string]string
	err       error
}

func (s *memorySource) IsAvailable() bool { return s.available }
func (s *memorySource) Name() string      { return s.name }

func (s *memorySource) Load() (*models.PropertySet, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.available {
		return models.EmptyPropertySet(s.name), nil
	}
	return models.NewPropertySet(s.props, s.name), nil
}

func genSource(i int) *rapid.Generator[*memorySource] {
	return rapid.Custom(func(t *rapid.T) *memorySource {
		src := &memorySource{
			name:      fmt.Sprintf("source-%d", i),
			available: rapid.Bool().Draw(t, "available"),
			props: rapid.MapOf(
				rapid.SampledFrom([]string{"a", "b", "c", "d"}),
				rapid.StringMatching(`[a-z0-9]{0,3}`),
			).Draw(t, "props"),
		}
		if rapid.IntRange(0, 4).Draw(t, "failure") == 0 {
			src.err = errors.New("boom")
		}
		return src
	})
}

// TestResolve_PropertyBased_LastWriterWins checks that for every key the
// merged value comes from the highest-precedence source that defines it.
func TestResolve_PropertyBased_LastWriterWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 5).Draw(t, "n")
		sources := make([]*memorySource, n)
		provider := make(staticProvider, n)
		for i := range n {
			sources[i] = genSource(i).Draw(t, fmt.Sprintf("source%d", i))
			provider[i] = sources[i]
		}

		view := NewResolver(provider, filter.NewEnvPrefixFilter(), logger.Nop()).Resolve("")

		want := map[string]string{}
		for _, src := range sources {
			if !src.available || src.err != nil {
				continue
			}
			for k, v := range src.props {
				want[k] = v
			}
		}

		assert.Equal(t, want, view.Map())
		assert.Len(t, view.Outcomes(), n)
	})
}

var _ source.ConfigurationSource = (*memorySource)(nil)
