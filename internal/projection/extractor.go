// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package projection

import (
	"bufio"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jeranaias/markings/internal/marking"
	"github.com/jeranaias/markings/internal/parser"
)

const (
	attrClassificationShortCode = "classification_short_code"
	attrSciCodewords            = "sci_codewords"
)

// rule derives an attribute from a parsed Marking and reconciles it with
// whatever the record already holds, raising a MarkingMismatch on
// disagreement.
type rule func(record Record, m marking.Marking) error

// Extractor projects a fixed set of attributes from a parsed banner
// marking onto a host Record (§6 "Attribute projection"). Every call to
// Process/ProcessStream is stamped with a fresh correlation ID so a
// MarkingMismatch can be traced back to the run that raised it, the way
// the teacher's internal/tasks.Task stamps a uuid onto each unit of work.
type Extractor struct {
	rules []rule
}

// New returns an Extractor with the full built-in projection rule set.
func New() *Extractor {
	return &Extractor{rules: []rule{
		projectClassificationShortCode,
		projectSciCodewords,
	}}
}

// AttributeNames enumerates every attribute this Extractor owns.
func (e *Extractor) AttributeNames() []string {
	return []string{attrClassificationShortCode, attrSciCodewords}
}

// Process parses text as a banner marking and runs every projection
// rule against record, returning the run's correlation ID. On the first
// MarkingMismatch, the ID is still returned alongside the error so a
// caller can log them together.
func (e *Extractor) Process(text string, record Record) (string, error) {
	correlationID := uuid.New().String()

	m, err := parser.ParseBanner(text)
	if err != nil {
		return correlationID, err
	}

	for _, r := range e.rules {
		if err := r(record, m); err != nil {
			return correlationID, err
		}
	}
	return correlationID, nil
}

// ProcessStream reads lines from r until the first non-blank line and
// treats it as the marking text; any remaining content is ignored.
func (e *Extractor) ProcessStream(r io.Reader, record Record) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return e.Process(line, record)
	}
	if err := scanner.Err(); err != nil {
		return uuid.New().String(), err
	}
	return e.Process("", record)
}

func projectClassificationShortCode(record Record, m marking.Marking) error {
	projected := shortCodeFor(m)
	return reconcile(record, attrClassificationShortCode, []string{projected})
}

func shortCodeFor(m marking.Marking) string {
	authority, isFgi := m.FgiAuthority()
	if !isFgi || (authority != "NATO" && authority != "COSMIC") {
		return m.Classification().ShortCode()
	}
	qualifier := ""
	if q, ok := m.NatoQualifier(); ok {
		qualifier = q.String()
	}
	return m.Classification().NATOCompositeCode(qualifier)
}

func projectSciCodewords(record Record, m marking.Marking) error {
	var codewords []string
	for _, sci := range m.SciControls() {
		if len(sci.Compartments) == 0 {
			codewords = append(codewords, sci.Identifier)
			continue
		}
		for _, c := range sci.Compartments {
			var b strings.Builder
			b.WriteString(sci.Identifier)
			b.WriteByte('-')
			b.WriteString(c.Code)
			for _, sub := range c.SubCompartments {
				b.WriteByte(' ')
				b.WriteString(sub)
			}
			codewords = append(codewords, b.String())
		}
	}
	if len(codewords) == 0 {
		return nil
	}
	return reconcile(record, attrSciCodewords, codewords)
}

func reconcile(record Record, name string, projected []string) error {
	existing, ok := record.Get(name)
	if !ok {
		return record.Set(Attribute{Name: name, Values: projected})
	}
	if !sameValues(existing.Values, projected) {
		return marking.NewMarkingMismatch(name, strings.Join(existing.Values, ","), strings.Join(projected, ","))
	}
	return nil
}

func sameValues(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
