package main

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	dataDirEnv  = "HEADLINER_HOME"
	dataDirName = ".headliner"
	studioLog   = "studio.log"
)

// resolveDataDir picks the data directory: the --data-dir flag, then
// $HEADLINER_HOME, then ~/.headliner.
func resolveDataDir(flags *rootFlags) (string, error) {
	if flags != nil && strings.TrimSpace(flags.dataDir) != "" {
		return filepath.Abs(flags.dataDir)
	}
	if env := strings.TrimSpace(os.Getenv(dataDirEnv)); env != "" {
		return filepath.Abs(env)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, dataDirName), nil
}

func studioLogPath(dataDir string) string {
	return filepath.Join(dataDir, studioLog)
}
