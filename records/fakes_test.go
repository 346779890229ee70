package records

// fakeList records what the controller pushed to it. It never calls back into
// the controller, mirroring the "setters do not emit" contract.
type fakeList struct {
	records   []Record
	selection ID
	calls     []string
}

func (l *fakeList) SetRecords(recs []Record) {
	l.records = append([]Record(nil), recs...)
	l.calls = append(l.calls, "SetRecords")
}

func (l *fakeList) SetSelection(id ID) {
	l.selection = id
	l.calls = append(l.calls, "SetSelection")
}

type fakeForm struct {
	record  Record
	visible bool
	fields  Fields
	sets    int
}

func (f *fakeForm) SetRecord(r Record) {
	f.record = r
	f.fields = r.Fields()
	f.sets++
}

func (f *fakeForm) SetVisible(v bool) { f.visible = v }
func (f *fakeForm) Fields() Fields    { return f.fields }

type fakeActions struct {
	visible bool
}

func (a *fakeActions) SetVisible(v bool) { a.visible = v }

type harness struct {
	list    *fakeList
	form    *fakeForm
	actions *fakeActions
	ctrl    *Controller
}

func newHarness(opts ...Option) *harness {
	h := &harness{list: &fakeList{}, form: &fakeForm{}, actions: &fakeActions{}}
	opts = append([]Option{WithIDGenerator(Sequence("id"))}, opts...)
	h.ctrl = NewController(h.list, h.form, h.actions, opts...)
	return h
}

func disneySeed() Option {
	return WithSeed(
		Record{ID: "A", Name: "Mickey", Surname: "Mouse"},
		Record{ID: "B", Name: "Walt", Surname: "Disney"},
	)
}
