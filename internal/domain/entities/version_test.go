//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/setversion/internal/domain/entities"
)

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	t.Run("should keep numeric versions unchanged", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"5.0.0", "0.0.1", "2.0", "1", "2024.10.14"} {
			// when
			version := entities.NormalizeVersion(raw)

			// then
			assert.Equal(t, raw, version.Converted)
			assert.Equal(t, raw, version.Original)
			assert.False(t, version.IsConverted())
		}
	})

	t.Run("should convert concatenated python release segments to tilde segments", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "5.0.0.0b2dev188"

		// when
		version := entities.NormalizeVersion(raw)

		// then
		assert.Equal(t, "5.0.0.0~b2~dev188", version.Converted)
		assert.Equal(t, raw, version.Original)
		assert.True(t, version.IsConverted())
	})

	t.Run("should fold python separators before release markers into tildes", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"1.0rc1":             "1.0~rc1",
			"1.0.rc1":            "1.0~rc1",
			"1.0-rc1":            "1.0~rc1",
			"2.1.dev3":           "2.1~dev3",
			"3.0a1":              "3.0~a1",
			"3.0alpha2":          "3.0~alpha2",
			"4.2.post1":          "4.2~post1",
			"1.0.0b1.post2.dev3": "1.0.0~b1~post2~dev3",
		}
		for raw, expected := range cases {
			// when
			version := entities.NormalizeVersion(raw)

			// then
			assert.Equal(t, expected, version.Converted, raw)
			assert.Equal(t, raw, version.Original, raw)
		}
	})

	t.Run("should replace characters rpm does not allow in a version", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "1.0.0-git abc"

		// when
		version := entities.NormalizeVersion(raw)

		// then
		assert.Equal(t, "1.0.0.git.abc", version.Converted)
		assert.Equal(t, raw, version.Original)
	})

	t.Run("should be idempotent on converted versions", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"5.0.0.0b2dev188", "1.0-rc1", "4.2.post1", "5.0.0", "1.0.0-git abc", "0~0"} {
			// given
			first := entities.NormalizeVersion(raw)

			// when
			second := entities.NormalizeVersion(first.Converted)

			// then
			assert.Equal(t, first.Converted, second.Converted, raw)
			assert.False(t, second.IsConverted(), raw)
		}
	})

	t.Run("should not treat words after the release as python segments", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "1.2.3.foo"

		// when
		version := entities.NormalizeVersion(raw)

		// then
		assert.Equal(t, "1.2.3.foo", version.Converted)
	})
}
