package editor

import (
	"github.com/thenoetrevino/dacite/internal/models"
)

// FormState is the visibility of the inline new-reference form
type FormState int

const (
	FormCollapsed FormState = iota
	FormExpanded
)

func (s FormState) String() string {
	if s == FormExpanded {
		return "expanded"
	}
	return "collapsed"
}

// LoadState tracks the fetch of candidate references
type LoadState int

const (
	RefsLoading LoadState = iota
	RefsLoaded
	RefsFailed
)

// Candidate is a reference as offered by the picker
type Candidate struct {
	Value string // Author(Year)
	Ref   models.Reference
}

// ReferencePicker selects an existing reference or drafts a new one, writing the result
// into the editor's draft through the reference patch.
type ReferencePicker struct {
	editor  *Editor
	form    FormState
	load    LoadState
	refs    []models.Reference
	loadErr error
}

// NewReferencePicker returns a collapsed picker waiting for its candidates
func NewReferencePicker(e *Editor) *ReferencePicker {
	return &ReferencePicker{editor: e, form: FormCollapsed, load: RefsLoading}
}

// FormState returns whether the new-reference form is shown
func (p *ReferencePicker) FormState() FormState {
	return p.form
}

// LoadState returns the candidate fetch state
func (p *ReferencePicker) LoadState() LoadState {
	return p.load
}

// LoadErr returns the error of a failed fetch
func (p *ReferencePicker) LoadErr() error {
	return p.loadErr
}

// SetLoading marks the candidates as being fetched (again)
func (p *ReferencePicker) SetLoading() {
	p.load = RefsLoading
	p.loadErr = nil
}

// SetLoaded stores the fetched candidates
func (p *ReferencePicker) SetLoaded(refs []models.Reference) {
	p.refs = refs
	p.load = RefsLoaded
	p.loadErr = nil
}

// SetFailed records a failed fetch
func (p *ReferencePicker) SetFailed(err error) {
	p.refs = nil
	p.load = RefsFailed
	p.loadErr = err
}

// Candidates returns the selectable references. ok is false until they have loaded.
func (p *ReferencePicker) Candidates() (candidates []Candidate, ok bool) {
	if p.load != RefsLoaded {
		return nil, false
	}
	candidates = make([]Candidate, 0, len(p.refs))
	for _, ref := range p.refs {
		candidates = append(candidates, Candidate{Value: ref.Label(), Ref: ref})
	}
	return candidates, true
}

// Selected returns the candidate matching the draft's reference; Value is "" when none is attached
func (p *ReferencePicker) Selected() Candidate {
	d := p.editor.Current()
	if d.Ref == nil {
		return Candidate{}
	}
	return Candidate{Value: d.Ref.Label(), Ref: *d.Ref}
}

// SelectExisting attaches an existing reference, replacing any drafted one
func (p *ReferencePicker) SelectExisting(ref models.Reference) error {
	if p.load != RefsLoaded {
		return ErrRefsNotLoaded
	}
	p.editor.ApplyPatch(SetReference(ref))
	return nil
}

// ToggleNewReferenceForm shows or hides the new-reference form
func (p *ReferencePicker) ToggleNewReferenceForm() {
	if p.form == FormCollapsed {
		p.form = FormExpanded
		return
	}
	p.form = FormCollapsed
}

// SubmitNewReference attaches a locally drafted reference. The reference is stored
// together with the column when the editor is submitted.
func (p *ReferencePicker) SubmitNewReference(ref models.Reference) {
	ref.ID = 0
	p.editor.ApplyPatch(SetReference(ref))
}
