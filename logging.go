package nonempty

import (
	"github.com/anacrolix/log"
)

var logger = log.Default.WithNames("nonempty")

// SetLogger replaces the logger used for debug output from this package.
func SetLogger(l log.Logger) {
	logger = l
}
