package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCurations(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "curations.yml", `
- jar: "postgresql-*.jar"
  reason: JDBC driver loaded by name
- jar: logback-classic-1.4.14.jar
`)

	rules, err := LoadCurations(p)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "postgresql-*.jar", rules[0].Jar)
	assert.Equal(t, "JDBC driver loaded by name", rules[0].Reason)
	assert.Empty(t, rules[1].Reason)
}

func TestLoadCurationsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCurations(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)

	_, err = LoadCurations(writeFile(t, dir, "empty-jar.yml", "- reason: nothing\n"))
	assert.ErrorContains(t, err, "empty jar pattern")

	_, err = LoadCurations(writeFile(t, dir, "bad-glob.yml", "- jar: \"[\"\n"))
	assert.ErrorContains(t, err, "invalid curation pattern")

	_, err = LoadCurations(writeFile(t, dir, "not-a-list.yml", "jar: x.jar\n"))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestApplyCurations(t *testing.T) {
	res := Compare(
		NewJarSet("a-1.jar", "postgresql-42.7.1.jar", "b-2.jar"),
		NewJarSet("b-2.jar", "c-3.jar", "postgresql-41.0.jar"),
	)
	rules := []CurationRule{{Jar: "postgresql-*.jar"}}

	got := ApplyCurations(res, rules)
	assert.Equal(t, []string{"a-1.jar"}, got.Unused)
	assert.Equal(t, []string{"postgresql-42.7.1.jar"}, got.Curated)
	// only the unused side is curated
	assert.Equal(t, []string{"c-3.jar", "postgresql-41.0.jar"}, got.Used)
	assert.Equal(t, []string{"b-2.jar"}, got.Shared)
}

func TestApplyCurationsNoRules(t *testing.T) {
	res := Compare(NewJarSet("a.jar"), NewJarSet())
	assert.Equal(t, res, ApplyCurations(res, nil))
}
