package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnusedLine(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "with scope", in: "com.foo:bar:jar:1.0:compile", want: "bar-1.0.jar", wantOK: true},
		{name: "exactly four fields", in: "com.foo:bar:jar:1.0", want: "bar-1.0.jar", wantOK: true},
		{name: "surrounding whitespace", in: "   org.slf4j:slf4j-api:jar:2.0.9:runtime  \n", want: "slf4j-api-2.0.9.jar", wantOK: true},
		{name: "classifier and extra fields", in: "g:a:jar:1.2.3:test:extra", want: "a-1.2.3.jar", wantOK: true},
		{name: "maven log prefix stays in group", in: "[WARNING]    com.foo:bar:jar:1.0:compile", want: "bar-1.0.jar", wantOK: true},
		{name: "unicode and separator blanks", in: "\u00a0\x1cg:a:jar:1.0\x1f\u3000", want: "a-1.0.jar", wantOK: true},
		{name: "empty fields", in: "a::jar:", want: "-.jar", wantOK: true},
		{name: "two fields", in: "com.foo:bar", wantOK: false},
		{name: "three fields", in: "com.foo:bar:jar", wantOK: false},
		{name: "empty line", in: "", wantOK: false},
		{name: "free text", in: "[INFO] BUILD SUCCESS", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatUnusedLine(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	dep, ok := ParseCoordinate("com.foo:bar:jar:1.0:compile")
	require.True(t, ok)
	assert.Equal(t, Dependency{
		GroupID:    "com.foo",
		ArtifactID: "bar",
		Type:       "jar",
		Version:    "1.0",
		Scope:      "compile",
	}, dep)
}

func TestJarNameIgnoresGroup(t *testing.T) {
	a := Dependency{GroupID: "com.one", ArtifactID: "util", Version: "1.0"}
	b := Dependency{GroupID: "org.two", ArtifactID: "util", Version: "1.0"}
	assert.Equal(t, a.JarName(), b.JarName())
}
