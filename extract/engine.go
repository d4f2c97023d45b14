// Package extract rebuilds wall records from a flat stream of markup events.
//
// An Engine consumes open/close/text/entity events, resolves every opening
// tag against a static dispatch table and keeps two LIFO structures: the
// handler queue, which pairs each open element with its text field and its
// close action, and the context stack, which saves the outer scope while a
// comments section or a single comment is being built.
package extract

import (
	"github.com/fwojciec/wallparse"
)

// Handler is one handler queue entry: where text goes while the element
// is open and what happens when it closes.
type Handler struct {
	Text  Field
	Close CloseAction
}

// EngineState is everything an Engine mutates while consuming a document.
type EngineState struct {
	// Queue is the handler queue; the last entry is the innermost element.
	Queue []Handler

	// Stack holds the scopes saved while a nested scope is open.
	Stack Stack

	// Current is the scope under construction.
	Current Frame

	Result wallparse.ExtractResult
}

var _ wallparse.TokenHandler = (*Engine)(nil)

// Engine builds records for a single document. It is not safe for
// concurrent use; use one Engine per document.
type Engine struct {
	state EngineState
	emit  wallparse.RecordFunc
	sink  wallparse.DiagnosticSink
	err   error
	done  bool
}

// NewEngine returns an Engine that passes completed top-level records to
// fn and diagnostics to sink. Either may be nil.
func NewEngine(fn wallparse.RecordFunc, sink wallparse.DiagnosticSink) *Engine {
	if fn == nil {
		fn = func(*wallparse.Record) error { return nil }
	}
	if sink == nil {
		sink = wallparse.DiscardDiagnostics
	}
	return &Engine{emit: fn, sink: sink}
}

// Depth returns the number of open scoped elements.
func (e *Engine) Depth() int {
	return len(e.state.Queue)
}

// Scope returns the kind of scope currently under construction.
func (e *Engine) Scope() ScopeKind {
	return e.state.Current.Kind
}

// OpenTag implements wallparse.TokenHandler.
func (e *Engine) OpenTag(name string, attrs []wallparse.Attribute) {
	if e.stopped() {
		return
	}

	m := Lookup(name, attrs)
	switch m.Resolution {
	case ResolvedUnknownElement:
		e.report(wallparse.Diagnostic{
			Kind:    wallparse.DiagnosticUnrecognizedElement,
			Element: name,
			Message: "unknown tag",
		})
		return
	case ResolvedTransparent:
		return
	case ResolvedUnknownClass:
		e.report(wallparse.Diagnostic{
			Kind:    wallparse.DiagnosticUnrecognizedClass,
			Element: name,
			Value:   m.Class,
			Message: "unknown class name",
		})
	}

	h := Handler{Text: m.Text, Close: m.Close}
	if !e.open(m.Open, name, m.Class) {
		h = Handler{}
	}
	if m.Scoped {
		e.state.Queue = append(e.state.Queue, h)
	}
}

// CloseTag implements wallparse.TokenHandler.
func (e *Engine) CloseTag(name string) {
	if e.stopped() || !IsScoped(name) {
		return
	}

	n := len(e.state.Queue)
	if n == 0 {
		e.report(wallparse.Diagnostic{
			Kind:    wallparse.DiagnosticUnbalancedScope,
			Element: name,
			Message: "closing tag without matching open tag",
		})
		return
	}

	h := e.state.Queue[n-1]
	e.state.Queue = e.state.Queue[:n-1]
	e.close(h.Close, name)
}

// Text implements wallparse.TokenHandler.
func (e *Engine) Text(text string) {
	if e.stopped() {
		return
	}
	e.route(text)
}

// Entity implements wallparse.TokenHandler.
func (e *Engine) Entity(name string) {
	if e.stopped() {
		return
	}
	s, ok := DecodeEntity(name)
	if !ok {
		e.report(wallparse.Diagnostic{
			Kind:    wallparse.DiagnosticUnrecognizedEntity,
			Value:   name,
			Message: "unknown entity",
		})
		return
	}
	e.route(s)
}

// Finish ends the document. A record still under construction is
// discarded. It returns the error returned by the RecordFunc, if any.
func (e *Engine) Finish() (*wallparse.ExtractResult, error) {
	if e.err != nil {
		return nil, e.err
	}
	if !e.done && e.state.Current.Kind != ScopeNone {
		e.report(wallparse.Diagnostic{
			Kind:    wallparse.DiagnosticUnbalancedScope,
			Value:   e.state.Current.Kind.String(),
			Message: "end of input inside an open scope; incomplete record discarded",
		})
		e.discard()
	}
	e.done = true

	result := e.state.Result
	return &result, nil
}

func (e *Engine) stopped() bool {
	return e.done || e.err != nil
}

// open runs an open action. It returns false if the action is not valid
// in the current scope, in which case the element is treated as a no-op.
func (e *Engine) open(action OpenAction, name, class string) bool {
	s := &e.state
	switch action {
	case OpenEntry:
		if s.Current.Kind != ScopeNone {
			e.report(wallparse.Diagnostic{
				Kind:    wallparse.DiagnosticUnbalancedScope,
				Element: name,
				Value:   class,
				Message: "entry opened before the previous one closed; incomplete record discarded",
			})
			e.discard()
		}
		s.Current = newRecordFrame(ScopeEntry)

	case OpenComments:
		if s.Current.Kind != ScopeEntry {
			e.misplaced(name, class)
			return false
		}
		s.Stack.Push(s.Current)
		s.Current = newListFrame()

	case OpenComment:
		if s.Current.Kind != ScopeCommentList {
			e.misplaced(name, class)
			return false
		}
		s.Stack.Push(s.Current)
		s.Current = newRecordFrame(ScopeComment)

	case OpenLink:
		if s.Current.IsRecord() {
			s.Current.Record.Type = wallparse.RecordTypeLink
		}

	case OpenNewline:
		if s.Current.IsRecord() {
			s.Current.Text.Append(FieldData, "\n")
		}
	}
	return true
}

// close runs a close action.
func (e *Engine) close(action CloseAction, name string) {
	s := &e.state
	switch action {
	case CloseEntry:
		if s.Current.Kind != ScopeEntry {
			e.unbalanced(name, ScopeEntry)
			return
		}
		e.finishEntry()

	case CloseComments:
		if s.Current.Kind != ScopeCommentList {
			e.unbalanced(name, ScopeCommentList)
			return
		}
		parent, ok := s.Stack.Pop()
		if !ok || parent.Kind != ScopeEntry {
			e.unbalanced(name, ScopeCommentList)
			return
		}
		parent.Record.Comments = s.Current.List
		s.Current = parent

	case CloseComment:
		if s.Current.Kind != ScopeComment {
			e.unbalanced(name, ScopeComment)
			return
		}
		parent, ok := s.Stack.Pop()
		if !ok || parent.Kind != ScopeCommentList {
			e.unbalanced(name, ScopeComment)
			return
		}
		comment := s.Current.Record
		s.Current.Text.Commit(comment)
		if err := comment.Validate(); err != nil {
			e.report(wallparse.Diagnostic{
				Kind:    wallparse.DiagnosticInvalidRecord,
				Element: name,
				Value:   ScopeComment.String(),
				Message: wallparse.ErrorMessage(err) + "; comment dropped",
			})
		} else {
			parent.List = append(parent.List, comment)
		}
		s.Current = parent
	}
}

// finishEntry commits the current entry and emits it.
func (e *Engine) finishEntry() {
	s := &e.state
	rec := s.Current.Record
	s.Current.Text.Commit(rec)
	s.Current = Frame{}

	if err := rec.Validate(); err != nil {
		e.report(wallparse.Diagnostic{
			Kind:    wallparse.DiagnosticInvalidRecord,
			Element: "div",
			Value:   ScopeEntry.String(),
			Message: wallparse.ErrorMessage(err) + "; record dropped",
		})
		s.Result.Discarded++
		return
	}

	s.Result.Records++
	s.Result.Comments += rec.CommentCount()
	if err := e.emit(rec); err != nil {
		e.err = err
	}
}

// route appends text to the field named by the innermost handler.
func (e *Engine) route(text string) {
	s := &e.state
	n := len(s.Queue)
	if n == 0 {
		return
	}
	field := s.Queue[n-1].Text
	if field == FieldNone {
		return
	}

	if s.Current.IsRecord() {
		s.Current.Text.Append(field, text)
		return
	}

	// Likes are listed inside the comments section but belong to the post.
	if field == FieldLikes && s.Current.Kind == ScopeCommentList {
		if parent, ok := s.Stack.Peek(); ok && parent.IsRecord() {
			parent.Text.Append(field, text)
		}
	}
}

// unbalanced reports a close action that does not match the current
// scope. If a record is in progress it can no longer be trusted and is
// discarded.
func (e *Engine) unbalanced(name string, want ScopeKind) {
	cur := e.state.Current.Kind
	if cur == ScopeNone {
		e.report(wallparse.Diagnostic{
			Kind:    wallparse.DiagnosticUnbalancedScope,
			Element: name,
			Value:   want.String(),
			Message: "scope closed outside any record",
		})
		return
	}
	e.report(wallparse.Diagnostic{
		Kind:    wallparse.DiagnosticUnbalancedScope,
		Element: name,
		Value:   want.String(),
		Message: "scope closed while " + cur.String() + " is open; incomplete record discarded",
	})
	e.discard()
}

func (e *Engine) misplaced(name, class string) {
	e.report(wallparse.Diagnostic{
		Kind:    wallparse.DiagnosticMisplacedScope,
		Element: name,
		Value:   class,
		Message: "scope not allowed inside " + e.state.Current.Kind.String(),
	})
}

// discard drops the record under construction and every saved scope.
func (e *Engine) discard() {
	e.state.Stack.Reset()
	e.state.Current = Frame{}
	e.state.Result.Discarded++
}

func (e *Engine) report(d wallparse.Diagnostic) {
	e.state.Result.Diagnostics++
	e.sink.Report(d)
}
