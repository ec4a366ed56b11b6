// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package mfmhex

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger writing to output.
// Only warnings and errors are logged unless debug is set.
func NewLogger(debug bool, output io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Formatter = new(logrus.TextFormatter)
	logger.Out = output
	if debug {
		logger.Level = logrus.DebugLevel
	} else {
		logger.Level = logrus.WarnLevel
	}
	return logger
}
