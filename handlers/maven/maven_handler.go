package mavenhandler

import (
	"fmt"

	"dep-reconcile/utils"
)

// ---------------------------
// Maven Handler
// ---------------------------
//
// Reads `mvn dependency:analyze` output, where every unused declared
// dependency is printed as group:artifact:type:version[:scope].
type MavenHandler struct{}

func (h *MavenHandler) Name() string {
	return "Maven"
}

// Scan formats every coordinate line as artifact-version.jar.
// Input order and duplicates are preserved; other lines are skipped.
func (h *MavenHandler) Scan(inputPath string) ([]string, error) {
	jars := []string{}
	err := utils.EachLine(inputPath, func(line string) {
		if jar, ok := utils.FormatUnusedLine(line); ok {
			jars = append(jars, jar)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("[MavenHandler] %v", err)
	}
	return jars, nil
}

// WriteOutput overwrites outputPath with the formatted names, backing up
// the previous file first when backupDir is set
func (h *MavenHandler) WriteOutput(jars []string, outputPath, backupDir string) error {
	if backupDir != "" {
		if _, err := utils.BackupFile(outputPath, backupDir); err != nil {
			return err
		}
	}
	if err := utils.WriteLines(outputPath, jars); err != nil {
		return fmt.Errorf("[MavenHandler] %v", err)
	}
	utils.SetWrittenCount(h.Name(), len(jars))
	return nil
}
