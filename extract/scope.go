package extract

import "github.com/fwojciec/wallparse"

// ScopeKind tags a Frame.
type ScopeKind int

// ScopeKind constants. ScopeNone is the top level, outside any record.
const (
	ScopeNone ScopeKind = iota
	ScopeEntry
	ScopeCommentList
	ScopeComment
)

// String returns the scope name as it appears in markup.
func (k ScopeKind) String() string {
	switch k {
	case ScopeEntry:
		return "feedentry"
	case ScopeCommentList:
		return "comments"
	case ScopeComment:
		return "comment"
	}
	return "top level"
}

// Frame is one scope under construction. Entry and Comment frames carry
// a record and its accumulator; CommentList frames carry the comments
// finished so far.
type Frame struct {
	Kind   ScopeKind
	Record *wallparse.Record
	Text   *Accumulator
	List   []*wallparse.Record
}

// newRecordFrame returns an empty Entry or Comment frame.
func newRecordFrame(kind ScopeKind) Frame {
	return Frame{
		Kind:   kind,
		Record: &wallparse.Record{Type: wallparse.RecordTypeText},
		Text:   &Accumulator{},
	}
}

// newListFrame returns an empty CommentList frame. The list is non-nil
// so that a comments section without comments stays distinguishable
// from no comments section.
func newListFrame() Frame {
	return Frame{Kind: ScopeCommentList, List: []*wallparse.Record{}}
}

// IsRecord reports whether the frame builds a record.
func (f Frame) IsRecord() bool {
	return f.Kind == ScopeEntry || f.Kind == ScopeComment
}

// Stack holds the outer frames saved while a nested scope is open.
type Stack struct {
	frames []Frame
}

// Push saves f.
func (s *Stack) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Pop removes and returns the innermost saved frame.
func (s *Stack) Pop() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	f := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = Frame{}
	s.frames = s.frames[:len(s.frames)-1]
	return f, true
}

// Peek returns the innermost saved frame without removing it.
func (s *Stack) Peek() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// Len returns the number of saved frames.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Reset drops every saved frame.
func (s *Stack) Reset() {
	clear(s.frames)
	s.frames = s.frames[:0]
}
