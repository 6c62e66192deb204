package commands

// ThemedCommandHelper supplies the small set of status symbols commands
// print next to messages. gomdlint ships one fixed symbol set rather than
// a user-selectable theme.
type ThemedCommandHelper struct{}

// NewThemedCommandHelper creates a new themed command helper.
func NewThemedCommandHelper() *ThemedCommandHelper {
	return &ThemedCommandHelper{}
}

func (h *ThemedCommandHelper) Success() string    { return "✓" }
func (h *ThemedCommandHelper) Error() string      { return "✗" }
func (h *ThemedCommandHelper) Warning() string    { return "⚠" }
func (h *ThemedCommandHelper) Info() string       { return "ℹ" }
func (h *ThemedCommandHelper) Processing() string { return "⟳" }
func (h *ThemedCommandHelper) Launch() string     { return "\U0001F680" }
func (h *ThemedCommandHelper) Winner() string     { return "\U0001F3C6" }
func (h *ThemedCommandHelper) Search() string     { return "\U0001F50D" }
func (h *ThemedCommandHelper) FileFound() string  { return "\U0001F4C4" }
func (h *ThemedCommandHelper) FileSaved() string  { return "\U0001F4BE" }
func (h *ThemedCommandHelper) Benchmark() string  { return "⏱" }
func (h *ThemedCommandHelper) Results() string    { return "\U0001F4CB" }
func (h *ThemedCommandHelper) Question() string   { return "?" }
func (h *ThemedCommandHelper) Settings() string   { return "\U0001F527" }
func (h *ThemedCommandHelper) List() string       { return "\U0001F4CB" }
func (h *ThemedCommandHelper) Document() string   { return "\U0001F4C4" }
func (h *ThemedCommandHelper) Edit() string       { return "\U0001F4DD" }
func (h *ThemedCommandHelper) Location() string   { return "\U0001F4CD" }
func (h *ThemedCommandHelper) Tip() string        { return "\U0001F4A1" }
