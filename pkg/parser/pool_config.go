package parser

import (
	"github.com/Coderrob/angular-snippet-generator/pkg/util"
)

// getDefaultPoolSize returns the default pool size based on CPU count.
//
// Delegates to util.GetOptimalPoolSize() so the parser pool and the
// extraction worker pool stay the same size; mismatched sizes would
// leave workers blocking on parser acquisition.
func getDefaultPoolSize() int {
	return util.GetOptimalPoolSize()
}
