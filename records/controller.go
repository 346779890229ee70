package records

import (
	"io"

	"github.com/grovetools/rolodex/errors"
	"github.com/sirupsen/logrus"
)

// Controller owns the record store and the current selection, and pushes
// both out to its views after every operation. It is driven from a single
// goroutine (the UI event loop) and is not safe for concurrent use.
type Controller struct {
	store     *Store
	selection ID

	list    ListView
	form    FormView
	actions ActionTrigger

	newID     IDGenerator
	observers []Observer
	logger    *logrus.Entry

	seed []Record
}

// Option configures a Controller.
type Option func(*Controller)

// WithSeed preloads the store. Records without an id get a generated one.
func WithSeed(recs ...Record) Option {
	return func(c *Controller) {
		c.seed = append(c.seed, recs...)
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Controller) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithLogger sets the logger used for operation traces.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers a callback run after each mutating operation.
func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observers = append(c.observers, obs)
		}
	}
}

// NewController builds a controller bound to its three views and performs
// the initial sync: all records go to the list and, when the store is not
// empty, the first record is selected and shown.
func NewController(list ListView, form FormView, actions ActionTrigger, opts ...Option) *Controller {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Controller{
		store:   NewStore(),
		list:    list,
		form:    form,
		actions: actions,
		newID:   NewUUID,
		logger:  discard.WithField("component", "records"),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	for _, r := range c.seed {
		if r.ID.IsNone() {
			r.ID = c.newID()
		}
		c.store.Put(r)
	}
	c.seed = nil

	c.list.SetRecords(c.store.Records())
	if first, ok := c.store.First(); ok {
		c.selection = first.ID
		c.list.SetSelection(c.selection)
		c.form.SetRecord(first)
		c.form.SetVisible(true)
		c.actions.SetVisible(true)
	} else {
		c.selection = NoSelection
		c.list.SetSelection(NoSelection)
		c.form.SetVisible(false)
		c.actions.SetVisible(false)
	}

	c.logger.WithField("records", c.store.Len()).Debug("Controller initialized")
	return c
}

// SelectionChanged is called by the list view when the user moves focus.
// An id unknown to the store is ignored and leaves nothing selected.
func (c *Controller) SelectionChanged(id ID) {
	if id.IsNone() {
		c.selection = NoSelection
		c.logger.Debug("Selection cleared")
		return
	}

	rec, ok := c.store.Get(id)
	if !ok {
		c.logger.WithField("id", id).Warn("Ignoring selection of unknown record")
		c.selection = NoSelection
		return
	}

	c.selection = id
	c.logger.WithField("id", id).Debug("Selection changed")
	c.form.SetRecord(rec)
}

// RequestNew inserts a blank record, selects it and shows the form.
func (c *Controller) RequestNew() {
	id := c.newID()
	rec := Record{ID: id}
	c.store.Put(rec)
	c.selection = id

	c.form.SetVisible(true)
	c.actions.SetVisible(true)
	c.list.SetRecords(c.store.Records())
	c.list.SetSelection(id)
	c.form.SetRecord(rec)

	c.logger.WithField("id", id).Info("Created record")
	c.notify()
}

// RequestSave overwrites the selected record with the form's current fields.
// Calling it without a valid selection is a programming error and panics.
func (c *Controller) RequestSave() {
	id := c.mustSelection("save")

	rec := New(id, c.form.Fields())
	c.store.Put(rec)

	c.list.SetRecords(c.store.Records())
	c.list.SetSelection(id)

	c.logger.WithFields(logrus.Fields{"id": id, "name": rec.Name, "surname": rec.Surname}).Info("Saved record")
	c.notify()
}

// RequestDelete removes the selected record and selects the first remaining
// one, or hides the form and controls when the store becomes empty.
// Calling it without a valid selection is a programming error and panics.
func (c *Controller) RequestDelete() {
	id := c.mustSelection("delete")
	c.store.Delete(id)

	c.list.SetRecords(c.store.Records())
	if first, ok := c.store.First(); ok {
		c.selection = first.ID
		c.form.SetRecord(first)
	} else {
		c.selection = NoSelection
		c.form.SetVisible(false)
		c.actions.SetVisible(false)
	}
	c.list.SetSelection(c.selection)

	c.logger.WithFields(logrus.Fields{"id": id, "selected": c.selection}).Info("Deleted record")
	c.notify()
}

// Reload replaces the whole store, e.g. after the snapshot changed on disk.
// The selection survives when its id is still present; otherwise the first
// record is selected, or nothing when recs is empty.
func (c *Controller) Reload(recs []Record) {
	c.store = NewStore()
	for _, r := range recs {
		if r.ID.IsNone() {
			r.ID = c.newID()
		}
		c.store.Put(r)
	}

	c.list.SetRecords(c.store.Records())
	rec, ok := c.store.Get(c.selection)
	if !ok {
		rec, ok = c.store.First()
	}
	if ok {
		c.selection = rec.ID
		c.form.SetRecord(rec)
		c.form.SetVisible(true)
		c.actions.SetVisible(true)
	} else {
		c.selection = NoSelection
		c.form.SetVisible(false)
		c.actions.SetVisible(false)
	}
	c.list.SetSelection(c.selection)

	c.logger.WithFields(logrus.Fields{"records": c.store.Len(), "selected": c.selection}).Info("Reloaded records")
	c.notify()
}

// Selection returns the selected id, or NoSelection.
func (c *Controller) Selection() ID {
	return c.selection
}

// Record returns a copy of the record stored under id.
func (c *Controller) Record(id ID) (Record, bool) {
	return c.store.Get(id)
}

// Records returns the store contents in display order.
func (c *Controller) Records() []Record {
	return c.store.Records()
}

// Len returns the number of stored records.
func (c *Controller) Len() int {
	return c.store.Len()
}

// mustSelection returns the current selection or panics when the caller
// broke the "save/delete only with a selection" contract.
func (c *Controller) mustSelection(op string) ID {
	if c.selection.IsNone() {
		panic(errors.NoSelection(op))
	}
	if !c.store.Has(c.selection) {
		panic(errors.RecordNotFound(string(c.selection)).WithDetail("operation", op))
	}
	return c.selection
}

func (c *Controller) notify() {
	if len(c.observers) == 0 {
		return
	}
	recs := c.store.Records()
	for _, obs := range c.observers {
		obs(recs)
	}
}
