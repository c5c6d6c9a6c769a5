// ABOUTME: Confirmation prompts guarding destructive actions
// ABOUTME: Surfaces plug in their own blocking prompt implementation
package editor

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var (
	Always Confirmer = ConfirmFunc(func(string) bool { return true })
	Never  Confirmer = ConfirmFunc(func(string) bool { return false })
)

const (
	PromptDeleteContact  = "Delete this contact?"
	PromptDeleteCategory = "Delete this category?"
)
