//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"
)

type specTag struct {
	key   string
	value string
}

// SpecFileBuilder helps create RPM spec file content with a fluent interface.
// Custom lines come first, then tags in insertion order, then a blank line.
type SpecFileBuilder struct {
	*testkit.BaseBuilder
	custom []string
	tags   []specTag
}

// NewSpecFileBuilder creates a new spec file builder with a Name tag.
func NewSpecFileBuilder() *SpecFileBuilder {
	return &SpecFileBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		tags:        []specTag{{key: "Name", value: "test"}},
	}
}

// WithTag adds or replaces a "Key: value" tag line.
func (b *SpecFileBuilder) WithTag(key, value string) *SpecFileBuilder {
	for i, tag := range b.tags {
		if tag.key == key {
			b.tags[i].value = value
			return b
		}
	}
	b.tags = append(b.tags, specTag{key: key, value: value})
	return b
}

// WithVersion sets the Version tag.
func (b *SpecFileBuilder) WithVersion(version string) *SpecFileBuilder {
	return b.WithTag("Version", version)
}

// WithLine adds a free-form line (e.g. "%define foo bar") before the tags.
func (b *SpecFileBuilder) WithLine(line string) *SpecFileBuilder {
	b.custom = append(b.custom, line)
	return b
}

// Build creates the spec content (satisfies testkit.Builder interface).
func (b *SpecFileBuilder) Build() interface{} {
	return b.BuildContent()
}

// BuildContent creates the spec content with a concrete return type.
func (b *SpecFileBuilder) BuildContent() string {
	var sb strings.Builder
	for _, line := range b.custom {
		sb.WriteString(line + "\n")
	}
	for _, tag := range b.tags {
		sb.WriteString(fmt.Sprintf("%s: %s\n", tag.key, tag.value))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Reset clears the builder state, allowing it to be reused.
func (b *SpecFileBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.custom = nil
	b.tags = []specTag{{key: "Name", value: "test"}}
	return b
}

// Clone creates a deep copy of the SpecFileBuilder.
func (b *SpecFileBuilder) Clone() testkit.Builder {
	return &SpecFileBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		custom:      append([]string(nil), b.custom...),
		tags:        append([]specTag(nil), b.tags...),
	}
}
