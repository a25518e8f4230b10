package mavenhandler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dep-reconcile/utils"
)

const analyzeOutput = `[INFO] --- maven-dependency-plugin:3.6.1:analyze (default-cli) @ app ---
[WARNING] Unused declared dependencies found:
com.foo:bar:jar:1.0:compile
com.foo:bar
org.apache.commons:commons-lang3:jar:3.14.0:compile
com.foo:bar:jar:1.0:compile
`

func TestScanKeepsOrderAndDuplicates(t *testing.T) {
	in := filepath.Join(t.TempDir(), "mvn-deps.log")
	require.NoError(t, os.WriteFile(in, []byte(analyzeOutput), 0o644))

	h := &MavenHandler{}
	jars, err := h.Scan(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar-1.0.jar", "commons-lang3-3.14.0.jar", "bar-1.0.jar"}, jars)
}

func TestScanLoneCRLineEndings(t *testing.T) {
	in := filepath.Join(t.TempDir(), "mvn-deps.log")
	require.NoError(t, os.WriteFile(in, []byte("g:a:jar:1:compile\rg:b:jar:2:compile\r"), 0o644))

	h := &MavenHandler{}
	jars, err := h.Scan(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1.jar", "b-2.jar"}, jars)
}

func TestScanMissingInput(t *testing.T) {
	h := &MavenHandler{}
	_, err := h.Scan(filepath.Join(t.TempDir(), "mvn-deps.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[MavenHandler]")
}

func TestWriteOutputWithBackup(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "unused-deps.log")
	backups := filepath.Join(dir, "backups")
	require.NoError(t, os.WriteFile(out, []byte("stale-0.1.jar\n"), 0o644))

	h := &MavenHandler{}
	require.NoError(t, h.WriteOutput([]string{"bar-1.0.jar", "bar-1.0.jar"}, out, backups))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "bar-1.0.jar\nbar-1.0.jar\n", string(data))
	assert.Equal(t, 2, utils.GetWrittenCount("Maven"))

	entries, err := os.ReadDir(backups)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	old, err := os.ReadFile(filepath.Join(backups, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "stale-0.1.jar\n", string(old))
}
