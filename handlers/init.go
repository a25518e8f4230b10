package handlers

import (
	jdepshandler "dep-reconcile/handlers/jdeps"
	mavenhandler "dep-reconcile/handlers/maven"

	"dep-reconcile/utils"
)

// Handler defines a common interface for the input formatters.
type Handler interface {
	Name() string
	Scan(inputPath string) ([]string, error)
	WriteOutput(jars []string, outputPath, backupDir string) error
}

// Job binds a handler to its input and output files.
type Job struct {
	Handler Handler
	Label   string // "unused" or "used", for status lines
	Input   string
	Output  string
}

// GetHandlers returns the formatting jobs in run order: unused list first, then used.
func GetHandlers(cfg *utils.Config) []Job {
	return []Job{
		{
			Handler: &mavenhandler.MavenHandler{},
			Label:   "unused",
			Input:   cfg.MavenUnusedDeps,
			Output:  cfg.UnusedDeps,
		},
		{
			Handler: &jdepshandler.JdepsHandler{AllPerLine: cfg.AllJarsPerLine},
			Label:   "used",
			Input:   cfg.JdepsOutput,
			Output:  cfg.UsedDeps,
		},
	}
}
