package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// isSpace also treats the ASCII file/group/record/unit separators as blanks
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// TrimBlank strips leading and trailing whitespace as defined by isSpace
func TrimBlank(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// Dependency represents a single Maven coordinate as printed by dependency:analyze
type Dependency struct {
	GroupID    string `json:"groupId,omitempty"`
	ArtifactID string `json:"artifactId,omitempty"`
	Type       string `json:"type,omitempty"`    // packaging, usually "jar"
	Version    string `json:"version,omitempty"` // raw version string, never compared semantically
	Scope      string `json:"scope,omitempty"`   // optional trailing field, ignored for naming
}

// ParseCoordinate splits a group:artifact:type:version[:scope...] line.
// Lines with fewer than 4 fields are not coordinates and return false.
func ParseCoordinate(line string) (Dependency, bool) {
	parts := strings.Split(TrimBlank(line), ":")
	if len(parts) < 4 {
		return Dependency{}, false
	}

	dep := Dependency{
		GroupID:    parts[0],
		ArtifactID: parts[1],
		Type:       parts[2],
		Version:    parts[3],
	}
	if len(parts) > 4 {
		dep.Scope = parts[4]
	}
	return dep, true
}

// JarName returns the canonical artifact-version.jar identifier
func (d Dependency) JarName() string {
	return fmt.Sprintf("%s-%s.jar", d.ArtifactID, d.Version)
}

// FormatUnusedLine turns one unused-dependency log line into a jar name
func FormatUnusedLine(line string) (string, bool) {
	dep, ok := ParseCoordinate(line)
	if !ok {
		return "", false
	}
	return dep.JarName(), true
}
