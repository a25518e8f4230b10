package utils

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// CurationRule marks jars that are expected to show up as unused,
// e.g. JDBC drivers or logging backends only loaded at runtime.
type CurationRule struct {
	Jar    string `yaml:"jar"`    // glob against the jar name, e.g. "postgresql-*.jar"
	Reason string `yaml:"reason"` // optional, free text
}

// LoadCurations reads a YAML list of curation rules
func LoadCurations(curationFile string) ([]CurationRule, error) {
	data, err := os.ReadFile(curationFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read curation file: %v", err)
	}

	var rules []CurationRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse curation file: %v", err)
	}

	for _, r := range rules {
		if r.Jar == "" {
			return nil, fmt.Errorf("invalid curation rule: empty jar pattern")
		}
		if _, err := path.Match(r.Jar, ""); err != nil {
			return nil, fmt.Errorf("invalid curation pattern %q: %v", r.Jar, err)
		}
	}
	return rules, nil
}

// MatchCuration returns the first rule matching jar
func MatchCuration(jar string, rules []CurationRule) (CurationRule, bool) {
	for _, r := range rules {
		if ok, _ := path.Match(r.Jar, jar); ok {
			return r, true
		}
	}
	return CurationRule{}, false
}

// ApplyCurations moves curated jars from Unused to Curated.
// Used and Shared are left untouched.
func ApplyCurations(res Result, rules []CurationRule) Result {
	if len(rules) == 0 {
		return res
	}

	unused := make([]string, 0, len(res.Unused))
	curated := append([]string{}, res.Curated...)
	for _, jar := range res.Unused {
		if _, ok := MatchCuration(jar, rules); ok {
			curated = append(curated, jar)
			continue
		}
		unused = append(unused, jar)
	}

	res.Unused = unused
	res.Curated = NewJarSet(curated...).Sorted()
	return res
}
