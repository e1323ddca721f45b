package models

type NoteType string

const (
	NoteTypeNote   NoteType = "note"
	NoteTypeUpdate NoteType = "update"
)

func (t NoteType) Valid() bool {
	return t == NoteTypeNote || t == NoteTypeUpdate
}

// Note is a free-text annotation attached to a task.
type Note struct {
	ID        string   `json:"id" yaml:"id"`
	Content   string   `json:"content" yaml:"content"`
	Author    string   `json:"author" yaml:"author"`
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Type      NoteType `json:"type" yaml:"type"`
}
