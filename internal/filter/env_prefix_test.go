package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-track/models"
)

func TestEnvPrefixFilter_BlankTagReturnsSameSet(t *testing.T) {
	set := models.NewPropertySet(map[string]string{"dev.a": "1", "b": "2"}, "src")
	f := NewEnvPrefixFilter()

	for _, tag := range []string{"", "   ", "\t"} {
		t.Run("tag="+tag, func(t *testing.T) {
			assert.Same(t, set, f.Filter(set, tag))
		})
	}
}

func TestEnvPrefixFilter_EmptySetReturnsSameSet(t *testing.T) {
	set := models.EmptyPropertySet("src")

	assert.Same(t, set, NewEnvPrefixFilter().Filter(set, "dev"))
}

func TestEnvPrefixFilter_NoMatchingKeys(t *testing.T) {
	set := models.NewPropertySet(map[string]string{
		"prod.db.url":     "prod-url",
		"common.property": "common",
	}, "/etc/track.properties")

	got := NewEnvPrefixFilter().Filter(set, "dev")

	require.NotNil(t, got)
	assert.True(t, got.IsEmpty())
	assert.Equal(t, "/etc/track.properties[filtered:dev](empty)", got.Provenance())
}

func TestEnvPrefixFilter_ExtractsAndStripsPrefix(t *testing.T) {
	set := models.NewPropertySet(map[string]string{
		"dev.db.url":      "dev-db-url",
		"dev.app.name":    "dev-app",
		"prod.db.url":     "prod-db-url",
		"common.property": "common",
	}, "/etc/track.properties")

	got := NewEnvPrefixFilter().Filter(set, "dev")

	assert.Equal(t, map[string]string{
		"db.url":   "dev-db-url",
		"app.name": "dev-app",
	}, got.Map())
	assert.Equal(t, "/etc/track.properties[filtered:dev]", got.Provenance())
}

func TestEnvPrefixFilter_MixedEnvironments(t *testing.T) {
	set := models.NewPropertySet(map[string]string{"dev.a": "1", "dev.b": "2", "prod.a": "9"}, "p")

	got := NewEnvPrefixFilter().Filter(set, "dev")

	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got.Map())
}

func TestEnvPrefixFilter_ExactTagKeyExcluded(t *testing.T) {
	set := models.NewPropertySet(map[string]string{
		"dev":          "bare",
		"dev.property": "dev-property-value",
		"devx.other":   "other",
	}, "p")

	got := NewEnvPrefixFilter().Filter(set, "dev")

	assert.Equal(t, map[string]string{"property": "dev-property-value"}, got.Map())
}

func TestEnvPrefixFilter_BarePrefixKeyBecomesEmptyKey(t *testing.T) {
	set := models.NewPropertySet(map[string]string{"dev.": "v", "prod.a": "1"}, "p")

	got := NewEnvPrefixFilter().Filter(set, "dev")

	assert.Equal(t, map[string]string{"": "v"}, got.Map())
	assert.Equal(t, "p[filtered:dev]", got.Provenance())
}

func TestEnvPrefixFilter_DoesNotMutateInput(t *testing.T) {
	input := map[string]string{"dev.a": "1", "b": "2"}
	set := models.NewPropertySet(input, "p")

	_ = NewEnvPrefixFilter().Filter(set, "dev")

	assert.Equal(t, input, set.Map())
	assert.Equal(t, "p", set.Provenance())
}

func TestEnvPrefixFilter_KeepsEmptyValues(t *testing.T) {
	set := models.NewPropertySet(map[string]string{"dev.empty": ""}, "p")

	got := NewEnvPrefixFilter().Filter(set, "dev")

	v, ok := got.Get("empty")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  "))
	assert.False(t, IsBlank("dev"))
}

// Property-based tests using rapid

func genKey() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z]{1,4}(\.[a-z]{0,4}){0,2}`)
}

func TestEnvPrefixFilter_PropertyBased_BlankTagIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		props := rapid.MapOf(genKey(), rapid.String()).Draw(t, "props")
		tag := rapid.SampledFrom([]string{"", " ", "  \t"}).Draw(t, "tag")
		set := models.NewPropertySet(props, "p")

		assert.Same(t, set, NewEnvPrefixFilter().Filter(set, tag))
	})
}

func TestEnvPrefixFilter_PropertyBased_PrefixLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		props := rapid.MapOf(genKey(), rapid.String()).Draw(t, "props")
		tag := rapid.StringMatching(`[a-z]{1,4}`).Draw(t, "tag")
		set := models.NewPropertySet(props, "p")

		got := NewEnvPrefixFilter().Filter(set, tag)

		if set.IsEmpty() {
			assert.Same(t, set, got)
			return
		}

		// every output key comes from exactly one prefixed input key
		for _, k := range got.Keys() {
			v, _ := got.Get(k)
			want, ok := set.Get(tag + "." + k)
			assert.True(t, ok, "key %q has no prefixed origin", k)
			assert.Equal(t, want, v)
		}

		// every prefixed input key survives
		prefixed := 0
		for _, k := range set.Keys() {
			if strings.HasPrefix(k, tag+".") {
				prefixed++
			}
		}
		assert.Equal(t, prefixed, got.Len())

		if got.IsEmpty() {
			assert.Contains(t, got.Provenance(), "(empty)")
		}
	})
}
