package app

// Variant selects how a notice is styled.
type Variant string

const (
	Default     Variant = "default"
	Destructive Variant = "destructive"
)

// Notice is transient feedback for a completed mutation.
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant,omitempty"`
}

func (n Notice) String() string {
	if n.Description == "" {
		return n.Title
	}
	return n.Title + ": " + n.Description
}

// Notices collects notices in order; its Push method fits Service.Notify.
type Notices struct {
	items []Notice
}

func (n *Notices) Push(notice Notice) {
	n.items = append(n.items, notice)
}

// Drain returns the collected notices and forgets them.
func (n *Notices) Drain() []Notice {
	out := n.items
	n.items = nil
	return out
}

// Last is the most recent notice, if any.
func (n *Notices) Last() (Notice, bool) {
	if len(n.items) == 0 {
		return Notice{}, false
	}
	return n.items[len(n.items)-1], true
}
