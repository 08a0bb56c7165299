package profile

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/nauticalab/tosca-profile/internal/validation"
)

// definitionsVersionRe matches the version names TOSCA documents use:
//
//   - tosca_simple_yaml_1_3
//   - tosca_simple_profile_for_nfv_1_0_0
//   - tosca_2_0
var definitionsVersionRe = regexp.MustCompile(
	`^tosca_(?:simple_(?:profile_for_[a-z0-9]+_|yaml_))?(\d+)_(\d+)(?:_(\d+))?$`,
)

// DefinitionsVersion parses tosca_definitions_version into a semantic
// version. Plain versions such as "1.3" are accepted as well.
func (p *Profile) DefinitionsVersion() (*semver.Version, error) {
	raw, err := p.Version()
	if err != nil {
		return nil, err
	}

	name, err := validation.ValidateString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SectionVersion, err)
	}

	return ParseDefinitionsVersion(name)
}

// ParseDefinitionsVersion converts a tosca_definitions_version value into a
// semantic version.
func ParseDefinitionsVersion(name string) (*semver.Version, error) {
	if m := definitionsVersionRe.FindStringSubmatch(name); m != nil {
		patch := m[3]
		if patch == "" {
			patch = "0"
		}
		return semver.NewVersion(fmt.Sprintf("%s.%s.%s", m[1], m[2], patch))
	}

	v, err := semver.NewVersion(name)
	if err != nil {
		return nil, fmt.Errorf("unrecognized %s %q: %w", SectionVersion, name, err)
	}
	return v, nil
}
