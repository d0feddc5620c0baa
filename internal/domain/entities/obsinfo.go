package entities

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ObsInfoExtension is the file suffix of OBS source snapshot metadata.
const ObsInfoExtension = ".obsinfo"

// ObsInfo is the companion metadata written next to an OBS source snapshot.
type ObsInfo struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Mtime   string `yaml:"mtime"`
	Commit  string `yaml:"commit"`
}

// ParseObsInfo decodes the "key: value" lines of an obsinfo file.
// It fails with ErrMalformedObsInfo when the content cannot be decoded or has no version.
func ParseObsInfo(data []byte) (*ObsInfo, error) {
	var info ObsInfo
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedObsInfo, err)
	}

	info.Version = strings.TrimSpace(info.Version)
	if info.Version == "" {
		return nil, fmt.Errorf("%w: missing version field", ErrMalformedObsInfo)
	}

	return &info, nil
}
