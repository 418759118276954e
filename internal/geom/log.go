package geom

import "github.com/charmbracelet/log"

var logger = log.Default().WithPrefix("geom")

// SetLogger replaces the logger used to report inconsistent geometry.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}
