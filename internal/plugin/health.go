package plugin

import (
	"path/filepath"
	"strings"

	"github.com/fyrsmithlabs/radard/internal/scanner"
)

// sourceExts are the extensions considered source files for recency.
var sourceExts = []string{".ts", ".tsx", ".js", ".go", ".py"}

// Health score bonuses. The floor keeps inert plugins from appearing
// broken; the ceiling keeps volume alone from looking perfect.
const (
	healthBase         = 50
	healthHasActions   = 15
	healthHasServices  = 15
	healthHasTests     = 20
	healthManyActions  = 5
	healthManyServices = 5
	healthMax          = 100
	manyThreshold      = 5
)

// isTestFile reports whether a file name looks like a test.
func isTestFile(name string) bool {
	return strings.Contains(name, ".test.") || strings.Contains(name, "_test.")
}

// Evaluate derives a Status for the plugin rooted at dir. Missing
// subdirectories are tolerated and simply contribute nothing; a missing
// dir yields a floor-score Status.
func Evaluate(dir string) Status {
	actionCount := scanner.CountFiles(filepath.Join(dir, "actions"), nil, isTestFile)
	serviceCount := scanner.CountFiles(filepath.Join(dir, "services"), nil, isTestFile)
	hasTests := scanner.CountFiles(filepath.Join(dir, "__tests__"), nil, func(name string) bool {
		return !isTestFile(name)
	}) > 0

	score := healthBase
	if actionCount > 0 {
		score += healthHasActions
	}
	if serviceCount > 0 {
		score += healthHasServices
	}
	if hasTests {
		score += healthHasTests
	}
	if actionCount > manyThreshold {
		score += healthManyActions
	}
	if serviceCount > manyThreshold {
		score += healthManyServices
	}
	if score > healthMax {
		score = healthMax
	}

	return Status{
		Name:         filepath.Base(dir),
		Path:         dir,
		ActionCount:  actionCount,
		ServiceCount: serviceCount,
		HasTests:     hasTests,
		LastModified: scanner.NewestModTime(dir, sourceExts),
		HealthScore:  score,
	}
}
