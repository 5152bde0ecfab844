package question

// Record is one quiz item: a prompt, its ordered choices, and the index of the
// correct choice.
type Record struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt       string   `json:"prompt" yaml:"prompt"`
	Choices      []string `json:"choices" yaml:"choices"`
	CorrectIndex int      `json:"correct_index" yaml:"correct_index"`
}

// IsCorrect reports whether the choice at index is the correct one.
func (r Record) IsCorrect(index int) bool {
	return index == r.CorrectIndex
}

// Answer returns the text of the correct choice, or "" for an invalid record.
func (r Record) Answer() string {
	if r.CorrectIndex < 0 || r.CorrectIndex >= len(r.Choices) {
		return ""
	}
	return r.Choices[r.CorrectIndex]
}

// Clone returns a copy that shares no backing arrays with r.
func (r Record) Clone() Record {
	r.Choices = append([]string(nil), r.Choices...)
	return r
}

// File is the authoring format accepted by LoadFile.
type File struct {
	Version   int      `json:"version" yaml:"version"`
	Questions []Record `json:"questions" yaml:"questions"`
}
