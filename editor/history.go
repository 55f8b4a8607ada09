package editor

// History is the linear undo/redo state of one editor. Snapshots are full
// copies of the content, taken once per formatting action.
type History struct {
	content string
	undo    []string
	redo    []string
}

func NewHistory(content string) *History {
	return &History{content: content}
}

func (h *History) Content() string { return h.content }
func (h *History) CanUndo() bool   { return len(h.undo) > 0 }
func (h *History) CanRedo() bool   { return len(h.redo) > 0 }

// Apply records the current content and replaces it. Any redo history is
// discarded.
func (h *History) Apply(content string) {
	h.undo = append(h.undo, h.content)
	h.redo = nil
	h.content = content
}

// Replace changes the content without taking a snapshot, as typing does.
func (h *History) Replace(content string) {
	h.content = content
}

// Undo steps back one snapshot. It reports false and changes nothing when
// there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	h.redo = append(h.redo, h.content)
	h.content, h.undo = pop(h.undo)
	return true
}

// Redo is the mirror of Undo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	h.undo = append(h.undo, h.content)
	h.content, h.redo = pop(h.redo)
	return true
}

func pop(stack []string) (string, []string) {
	last := len(stack) - 1
	return stack[last], stack[:last]
}
