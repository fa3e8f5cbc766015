package maplib

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{"module": "maplib"})

// SetLogger replaces the entry used for the package's debug output.
func SetLogger(entry *log.Entry) {
	if entry == nil {
		entry = log.WithFields(log.Fields{"module": "maplib"})
	}
	logger = entry
}
