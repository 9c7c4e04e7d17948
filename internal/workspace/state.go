package workspace

const DefaultTitle = "A Page"

// Document is what a tab shows. Close releases its file watch.
type Document interface {
	Title() string
	Loaded() bool
	Close() error
}

type Tab struct {
	Doc Document
}

func (t *Tab) Title() string {
	if t == nil || t.Doc == nil || !t.Doc.Loaded() {
		return DefaultTitle
	}
	return t.Doc.Title()
}

type State struct {
	tabs    []*Tab
	Current int
}

func NewState() *State {
	return &State{Current: -1}
}

func (s *State) Normalize() {
	if len(s.tabs) == 0 {
		s.Current = -1
		return
	}
	if s.Current < 0 {
		s.Current = 0
	}
	if s.Current >= len(s.tabs) {
		s.Current = len(s.tabs) - 1
	}
}

func (s *State) Len() int { return len(s.tabs) }

func (s *State) Tabs() []*Tab { return s.tabs }

// NewTab appends a tab and switches to it.
func (s *State) NewTab(doc Document) *Tab {
	tab := &Tab{Doc: doc}
	s.tabs = append(s.tabs, tab)
	s.Current = len(s.tabs) - 1
	return tab
}

func (s *State) CurrentTab() *Tab {
	s.Normalize()
	if s.Current < 0 {
		return nil
	}
	return s.tabs[s.Current]
}

func (s *State) Select(i int) bool {
	if i < 0 || i >= len(s.tabs) {
		return false
	}
	s.Current = i
	return true
}

func (s *State) Next() {
	if len(s.tabs) == 0 {
		return
	}
	s.Current = (s.Current + 1) % len(s.tabs)
}

func (s *State) Prev() {
	if len(s.tabs) == 0 {
		return
	}
	s.Current = (s.Current - 1 + len(s.tabs)) % len(s.tabs)
}

// Close removes tab i. The tab's document is closed even if removal of the
// watch fails; that error is returned after the tab is gone.
func (s *State) Close(i int) error {
	if i < 0 || i >= len(s.tabs) {
		return nil
	}
	tab := s.tabs[i]
	s.tabs = append(s.tabs[:i], s.tabs[i+1:]...)
	if i < s.Current {
		s.Current--
	}
	s.Normalize()
	if tab.Doc == nil {
		return nil
	}
	return tab.Doc.Close()
}

func (s *State) CloseAll() error {
	var first error
	for len(s.tabs) > 0 {
		if err := s.Close(len(s.tabs) - 1); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *State) Titles() []string {
	out := make([]string, len(s.tabs))
	for i, t := range s.tabs {
		out[i] = t.Title()
	}
	return out
}
