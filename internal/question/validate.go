package question

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is matched by every *ValidationError.
var ErrInvalidRecord = errors.New("invalid question record")

// Issue captures a single validation problem.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ErrInvalidRecord.Error()
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRecord, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrInvalidRecord.
func (err *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace and validates a record. It is meant for text
// typed or authored by a person; stores keep records exactly as given.
func Normalize(record Record) (Record, error) {
	collector := &issueCollector{}
	record = normalizeRecord(record)
	checkRecord(collector, "", record)
	if err := collector.result(); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Validate checks a record without modifying it.
func Validate(record Record) error {
	collector := &issueCollector{}
	checkRecord(collector, "", record)
	return collector.result()
}

// NormalizeFile trims and validates every record of an authoring file. Issues
// from all records are reported together.
func NormalizeFile(file File) (File, error) {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	if len(file.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	seen := make(map[string]int, len(file.Questions))
	for i, record := range file.Questions {
		record = normalizeRecord(record)
		prefix := fmt.Sprintf("questions[%d].", i)
		checkRecord(collector, prefix, record)
		if record.ID != "" {
			if first, ok := seen[record.ID]; ok {
				collector.add(prefix+"id", fmt.Sprintf("duplicates questions[%d].id %q", first, record.ID))
			} else {
				seen[record.ID] = i
			}
		}
		file.Questions[i] = record
	}
	if err := collector.result(); err != nil {
		return File{}, err
	}
	return file, nil
}

// CheckNewIDs reports every record whose ID is already used by stored.
// Records without an ID always pass.
func CheckNewIDs(records, stored []Record) error {
	existing := make(map[string]struct{}, len(stored))
	for _, record := range stored {
		existing[record.ID] = struct{}{}
	}
	collector := &issueCollector{}
	for i, record := range records {
		if record.ID == "" {
			continue
		}
		if _, ok := existing[record.ID]; ok {
			collector.add(fmt.Sprintf("questions[%d].id", i), fmt.Sprintf("%q already exists", record.ID))
		}
	}
	return collector.result()
}

// DuplicateID is returned by stores when a record reuses a stored ID.
func DuplicateID(id string) error {
	return &ValidationError{Issues: []Issue{{Field: "id", Message: fmt.Sprintf("%q already exists", id)}}}
}

func normalizeRecord(record Record) Record {
	record.ID = strings.TrimSpace(record.ID)
	record.Prompt = strings.TrimSpace(record.Prompt)
	choices := make([]string, 0, len(record.Choices))
	for _, choice := range record.Choices {
		choices = append(choices, strings.TrimSpace(choice))
	}
	record.Choices = choices
	return record
}

// checkRecord applies the record invariants. The prompt needs visible text;
// a choice only needs to be non-empty.
func checkRecord(collector *issueCollector, prefix string, record Record) {
	if strings.TrimSpace(record.Prompt) == "" {
		collector.add(prefix+"prompt", "is required")
	}
	if len(record.Choices) == 0 {
		collector.add(prefix+"choices", "must include at least one entry")
	}
	for i, choice := range record.Choices {
		if choice == "" {
			collector.add(fmt.Sprintf("%schoices[%d]", prefix, i), "is required")
		}
	}
	if record.CorrectIndex < 0 || (len(record.Choices) > 0 && record.CorrectIndex >= len(record.Choices)) {
		collector.add(prefix+"correct_index", fmt.Sprintf("%d is out of range for %d choices", record.CorrectIndex, len(record.Choices)))
	}
}
