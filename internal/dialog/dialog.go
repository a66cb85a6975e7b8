// Package dialog is the log-round modal: a state machine owning the
// round-entry form. A thin UI-binding layer reports field changes, key
// presses, and submit/cancel actions; the controller decides what the
// form shows, which errors are visible, and where focus goes.
package dialog

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/speedscore/roundtracker/internal"
	"github.com/speedscore/roundtracker/internal/notify"
	"github.com/speedscore/roundtracker/internal/score"
	"github.com/speedscore/roundtracker/internal/store"
	"github.com/speedscore/roundtracker/internal/table"
	"github.com/speedscore/roundtracker/internal/validate"
)

type State string

const (
	Closed      State = "closed"
	OpenClean   State = "openClean"
	OpenDirty   State = "openDirty"
	OpenInvalid State = "openInvalid"
	Submitting  State = "submitting"
)

type Mode string

const (
	ModeLog  Mode = "log"
	ModeEdit Mode = "edit"
)

var (
	ErrNotOpen       = errors.New("dialog: not open")
	ErrAlreadyOpen   = errors.New("dialog: already open")
	ErrNoSuchField   = errors.New("dialog: no such field")
	ErrInvalidOption = errors.New("dialog: value not among the select's options")
)

// FormState is the raw value of every form control, exactly as the
// binding layer reports them. SGS is derived and never set directly.
type FormState struct {
	Date    string `json:"date"`
	Course  string `json:"course"`
	Type    string `json:"type"`
	Holes   string `json:"holes"`
	Strokes string `json:"strokes"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
	SGS     string `json:"sgs"`
	Notes   string `json:"notes"`
}

// Controller drives the log-round dialog. It owns no rendering; it owns
// the decisions the rendering follows.
type Controller struct {
	state   State
	mode    Mode
	editNum int

	form          FormState
	result        validate.Result
	errBoxVisible bool
	visibleErrors map[string]bool

	focus          string
	firstFocusable string
	title          string

	session  *store.Session
	renderer *table.Renderer
	notifier notify.Notifier
	logger   internal.Logger

	// Now supplies "today" for the date default; tests pin it.
	Now func() time.Time
}

func NewController(session *store.Session, renderer *table.Renderer, notifier notify.Notifier, logger internal.Logger) *Controller {
	return &Controller{
		state:         Closed,
		mode:          ModeLog,
		visibleErrors: map[string]bool{},
		session:       session,
		renderer:      renderer,
		notifier:      notifier,
		logger:        logger,
		Now:           time.Now,
	}
}

func (c *Controller) State() State          { return c.state }
func (c *Controller) Mode() Mode            { return c.mode }
func (c *Controller) Form() FormState       { return c.form }
func (c *Controller) Focus() string         { return c.focus }
func (c *Controller) Title() string         { return c.title }
func (c *Controller) ErrBoxVisible() bool   { return c.errBoxVisible }
func (c *Controller) Result() validate.Result { return c.result }

// ErrorVisible reports whether the named field's error message is shown.
func (c *Controller) ErrorVisible(field string) bool { return c.visibleErrors[field] }

func (c *Controller) open() bool {
	return c.state == OpenClean || c.state == OpenDirty || c.state == OpenInvalid
}

func (c *Controller) defaults() FormState {
	return FormState{
		Date:    c.Now().Format("2006-01-02"),
		Course:  "",
		Type:    string(internal.RoundPractice),
		Holes:   "18",
		Strokes: "80",
		Minutes: "60",
		Seconds: "00",
		SGS:     score.SGS(80, 60, "00"),
		Notes:   "",
	}
}

func (c *Controller) reset() {
	c.form = c.defaults()
	c.result = validate.Result{Valid: true}
	c.errBoxVisible = false
	c.visibleErrors = map[string]bool{}
	c.focus = validate.FieldDate
	c.firstFocusable = validate.FieldDate
}

// Open transitions Closed -> OpenClean with the log-round defaults and
// initial focus on the date field.
func (c *Controller) Open() error {
	if c.state != Closed {
		return ErrAlreadyOpen
	}
	c.mode = ModeLog
	c.editNum = 0
	c.title = "Log Round"
	c.reset()
	c.state = OpenClean
	return nil
}

// OpenForEdit opens the dialog populated with an existing round. The
// round number is preserved through the eventual submit.
func (c *Controller) OpenForEdit(roundNum int) error {
	if c.state != Closed {
		return ErrAlreadyOpen
	}
	idx, err := c.session.FindIndexByRoundNum(roundNum)
	if err != nil {
		return err
	}
	r := c.session.Rounds()[idx]
	c.mode = ModeEdit
	c.editNum = roundNum
	c.title = "Edit Round"
	c.reset()
	c.form = FormState{
		Date:    r.Date,
		Course:  r.Course,
		Type:    string(r.Type),
		Holes:   strconv.Itoa(r.Holes),
		Strokes: strconv.Itoa(r.Strokes),
		Minutes: strconv.Itoa(r.Minutes),
		Seconds: r.Seconds,
		SGS:     r.SGS,
		Notes:   r.Notes,
	}
	c.state = OpenClean
	return nil
}

// SetField records a change to one form control. The seconds field is
// zero-padded on change; any change to strokes, minutes, or seconds
// recomputes the derived SGS field. The type and holes selects reject
// values outside their option sets.
func (c *Controller) SetField(name, value string) error {
	if !c.open() {
		return ErrNotOpen
	}
	switch name {
	case validate.FieldDate:
		c.form.Date = value
	case validate.FieldCourse:
		c.form.Course = value
	case "type":
		// Select control: only its declared options can arrive.
		if value != string(internal.RoundPractice) && value != string(internal.RoundTournament) {
			return ErrInvalidOption
		}
		c.form.Type = value
	case "holes":
		if value != "9" && value != "18" {
			return ErrInvalidOption
		}
		c.form.Holes = value
	case validate.FieldStrokes:
		c.form.Strokes = value
	case validate.FieldMinutes:
		c.form.Minutes = value
	case validate.FieldSeconds:
		if value != "" {
			value = score.PadSeconds(value)
		}
		c.form.Seconds = value
	case validate.FieldNotes:
		c.form.Notes = value
	default:
		return ErrNoSuchField
	}
	if name == validate.FieldStrokes || name == validate.FieldMinutes || name == validate.FieldSeconds {
		c.recomputeSGS()
	}
	if c.state == OpenClean {
		c.state = OpenDirty
	}
	return nil
}

func (c *Controller) recomputeSGS() {
	strokes, errS := strconv.Atoi(c.form.Strokes)
	minutes, errM := strconv.Atoi(c.form.Minutes)
	if errS != nil || errM != nil || c.form.Seconds == "" {
		c.form.SGS = ""
		return
	}
	c.form.SGS = score.SGS(strokes, minutes, c.form.Seconds)
}

func (c *Controller) input() validate.RoundInput {
	return validate.RoundInput{
		Date:    c.form.Date,
		Course:  c.form.Course,
		Strokes: c.form.Strokes,
		Minutes: c.form.Minutes,
		Seconds: c.form.Seconds,
		Notes:   c.form.Notes,
	}
}

// Submit runs the validator over the current field values. On success the
// round is built, persisted, rendered, announced, and the dialog closes
// reset to defaults. On failure the dialog enters OpenInvalid: the error
// box shows, each invalid field's message becomes visible (valid fields'
// messages are hidden), and focus lands per the fixed error precedence.
func (c *Controller) Submit(ctx context.Context) (validate.Result, error) {
	if !c.open() {
		return validate.Result{}, ErrNotOpen
	}
	c.state = Submitting
	res := validate.Round(c.input())
	c.result = res

	if !res.Valid {
		c.state = OpenInvalid
		c.errBoxVisible = true
		c.title = "Error: Log Round"
		c.applyErrorFocus(res)
		return res, nil
	}

	round := c.buildRound()
	switch c.mode {
	case ModeEdit:
		if err := c.session.Update(ctx, c.editNum, round); err != nil {
			c.state = OpenDirty
			return res, err
		}
		round.RoundNum = c.editNum
		if err := c.renderer.UpdateRow(round); err != nil {
			c.logger.Warnf("dialog: no table row for round %d: %v", c.editNum, err)
		}
		c.notifier.Show("Round Updated!")
	default:
		num, err := c.session.Append(ctx, round)
		if err != nil {
			c.state = OpenDirty
			return res, err
		}
		round.RoundNum = num
		c.renderer.AddRow(round)
		c.notifier.Show("New Round Logged!")
	}

	c.mode = ModeLog
	c.editNum = 0
	c.title = "Log Round"
	c.reset()
	c.state = Closed
	return res, nil
}

// buildRound assumes the form has passed validation. SGS is recomputed
// from the parsed inputs so the persisted value can never disagree with
// them, whatever the live field showed.
func (c *Controller) buildRound() internal.Round {
	strokes, _ := strconv.Atoi(c.form.Strokes)
	minutes, _ := strconv.Atoi(c.form.Minutes)
	holes, _ := strconv.Atoi(c.form.Holes)
	seconds := score.PadSeconds(c.form.Seconds)
	return internal.Round{
		Date:    c.form.Date,
		Course:  c.form.Course,
		Type:    internal.RoundType(c.form.Type),
		Holes:   holes,
		Strokes: strokes,
		Minutes: minutes,
		Seconds: seconds,
		SGS:     score.SGS(strokes, minutes, seconds),
		Notes:   c.form.Notes,
	}
}

// Cancel discards in-progress edits and closes the dialog. Nothing is
// persisted; the next Open starts from defaults again.
func (c *Controller) Cancel() error {
	if !c.open() {
		return ErrNotOpen
	}
	c.mode = ModeLog
	c.editNum = 0
	c.title = "Log Round"
	c.reset()
	c.state = Closed
	return nil
}
