package keymap

// Binding contexts. Keys not bound in the active context fall back to ContextGlobal.
const (
	ContextGlobal   = "global"
	ContextPicker   = "picker"   // a field is focused, no list open
	ContextDropdown = "dropdown" // the focused field's list is open
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings, used for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionGoToDate, []string{"/"}, "Go to date", ContextGlobal},
	{ActionClearHistory, []string{"X"}, "Clear recent dates", ContextGlobal},

	// Picker
	{ActionNextField, []string{"right", "l", "tab"}, "Next field", ContextPicker},
	{ActionPrevField, []string{"left", "h", "shift+tab"}, "Previous field", ContextPicker},
	{ActionPrev, []string{"up", "k"}, "Previous value", ContextPicker},
	{ActionNext, []string{"down", "j"}, "Next value", ContextPicker},
	{ActionFirst, []string{"home", "g"}, "First value", ContextPicker},
	{ActionLast, []string{"end", "G"}, "Last value", ContextPicker},
	{ActionOpen, []string{"enter", " "}, "Open list", ContextPicker},
	{ActionToday, []string{"t"}, "Today", ContextPicker},

	// Open dropdown
	{ActionPrev, []string{"up", "k"}, "Move up", ContextDropdown},
	{ActionNext, []string{"down", "j"}, "Move down", ContextDropdown},
	{ActionFirst, []string{"home", "g"}, "First entry", ContextDropdown},
	{ActionLast, []string{"end", "G"}, "Last entry", ContextDropdown},
	{ActionOpen, []string{"enter", " "}, "Select entry", ContextDropdown},
	{ActionCancel, []string{"esc"}, "Close list", ContextDropdown},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
