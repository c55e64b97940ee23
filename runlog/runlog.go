//  Copyright (c) 2024 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runlog keeps the per-process archive of completed runs. Each run
// persists one record after its summary is produced; the archive lives in
// memory for the process lifetime and can be encoded as an s2-compressed gob
// stream.
package runlog

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/s2"

	"github.com/tallyrun/tallyrun/config"
	"github.com/tallyrun/tallyrun/util/orderedmap"
)

// A Record is what one run persists: the process mode at completion with
// the processed suffix applied, and the run's final value in field B.
type Record struct {
	ID   string
	Mode string
	B    int
	When time.Time
}

// Log is the insertion-ordered archive of run records for one process.
type Log struct {
	records *orderedmap.OrderedMap[string, Record]
}

// NewLog returns an empty archive.
func NewLog() *Log {
	return &Log{records: orderedmap.New[string, Record]()}
}

// Append persists one completed run and returns its record. The record's
// mode is the process mode with the processed suffix; B carries the run's
// final value.
func (l *Log) Append(mode string, final int, when time.Time) Record {
	rec := Record{
		ID:   uuid.NewString(),
		Mode: mode + config.ProcessedSuffix,
		B:    final,
		When: when,
	}
	l.records.Store(rec.ID, rec)
	return rec
}

// Len returns the number of archived runs.
func (l *Log) Len() int {
	return l.records.Len()
}

// Records returns the archived records in run order.
func (l *Log) Records() []Record {
	out := make([]Record, 0, l.records.Len())
	for _, p := range l.records.Pairs {
		out = append(out, p.Value)
	}
	return out
}

// GobEncode encodes the archive as an s2-compressed gob stream.
func (l *Log) GobEncode() (b []byte, err error) {
	var buf bytes.Buffer
	writer := s2.NewWriter(&buf)
	defer func() {
		if cerr := writer.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	if err := gob.NewEncoder(writer).Encode(l.records); err != nil {
		return nil, err
	}

	// Close the s2 writer before taking the bytes so the stream carries its
	// trailing frame.
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode decodes an archive produced by GobEncode.
func (l *Log) GobDecode(input []byte) error {
	l.records = orderedmap.New[string, Record]()
	buf := bytes.NewBuffer(input)
	return gob.NewDecoder(s2.NewReader(buf)).Decode(&l.records)
}
