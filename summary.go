// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package mfmhex

import (
	"github.com/fatih/structs"
	"github.com/sirupsen/logrus"
)

// Summary describes one results file read
type Summary struct {
	Path string `structs:"path"`
	Size int    `structs:"size"`
}

// NewSummary returns the Summary of data read from path
func NewSummary(path string, data []byte) *Summary {
	return &Summary{
		Path: path,
		Size: len(data),
	}
}

// Fields returns the summary as log fields
func (s *Summary) Fields() logrus.Fields {
	return logrus.Fields(structs.Map(s))
}
