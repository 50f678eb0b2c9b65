package services

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

// ScheduleDocument is the file form of a generated schedule. It is written by
// generateSchedule, may be edited by hand, and is read back by finalizeSchedule.
type ScheduleDocument struct {
	WeekStart     string             `json:"weekStart"`
	Schedule      allocator.Schedule `json:"schedule"`
	ScheduleNames map[string]string  `json:"scheduleNames,omitempty"`
	UnfilledSlots []string           `json:"unfilledSlots,omitempty"`
}

// NewScheduleDocument builds the document for a generated schedule
func NewScheduleDocument(result *ScheduleResult) *ScheduleDocument {
	return &ScheduleDocument{
		WeekStart:     result.WeekStart.Format(dateLayout),
		Schedule:      result.Outcome.Schedule,
		ScheduleNames: result.Outcome.ScheduleNames,
		UnfilledSlots: result.Outcome.UnfilledSlots,
	}
}

// WriteScheduleDocument writes the document as indented JSON
func WriteScheduleDocument(w io.Writer, doc *ScheduleDocument) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to write schedule document: %w", err)
	}
	return nil
}

// ReadScheduleDocument parses a document written by WriteScheduleDocument
func ReadScheduleDocument(r io.Reader) (*ScheduleDocument, error) {
	var doc ScheduleDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse schedule document: %w", err)
	}
	return &doc, nil
}
