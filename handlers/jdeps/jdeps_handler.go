package jdepshandler

import (
	"fmt"
	"regexp"

	"dep-reconcile/utils"
)

// jarRegex matches a run of non-whitespace ending in ".jar". Whitespace covers
// \v, U+001C..U+001F, U+0085 and the Unicode separators, not only RE2's \s.
var jarRegex = regexp.MustCompile(`([^\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+\.jar)`)

// ---------------------------
// jdeps Handler
// ---------------------------
//
// Reads free-form jdeps output and keeps every token ending in .jar.
type JdepsHandler struct {
	// AllPerLine keeps every jar token on a line instead of only the first
	AllPerLine bool
}

func (h *JdepsHandler) Name() string {
	return "jdeps"
}

// ExtractJars returns the jar tokens of a single line: at most one unless allPerLine
func ExtractJars(line string, allPerLine bool) []string {
	if !allPerLine {
		if m := jarRegex.FindStringSubmatch(line); len(m) >= 2 {
			return []string{m[1]}
		}
		return nil
	}

	var jars []string
	for _, m := range jarRegex.FindAllStringSubmatch(line, -1) {
		jars = append(jars, m[1])
	}
	return jars
}

// Scan collects the unique jar names of inputPath, sorted
func (h *JdepsHandler) Scan(inputPath string) ([]string, error) {
	jars := make(utils.JarSet)
	err := utils.EachLine(inputPath, func(line string) {
		for _, j := range ExtractJars(line, h.AllPerLine) {
			jars.Add(j)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("[JdepsHandler] %v", err)
	}
	return jars.Sorted(), nil
}

// WriteOutput overwrites outputPath with the jar names, backing up
// the previous file first when backupDir is set
func (h *JdepsHandler) WriteOutput(jars []string, outputPath, backupDir string) error {
	if backupDir != "" {
		if _, err := utils.BackupFile(outputPath, backupDir); err != nil {
			return err
		}
	}
	if err := utils.WriteLines(outputPath, jars); err != nil {
		return fmt.Errorf("[JdepsHandler] %v", err)
	}
	utils.SetWrittenCount(h.Name(), len(jars))
	return nil
}
