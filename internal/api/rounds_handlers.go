package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/speedscore/roundtracker/internal/dialog"
	"github.com/speedscore/roundtracker/internal/validate"
)

var edgeValidate = validator.New()

// RoundRequest is a full form submission. Values arrive as strings, as
// entered: field-level checks (presence, ranges, lengths) are the round
// validator's job so the client gets every field error at once. The two
// select controls are shape-checked here because they can never be
// invalid on a real form.
type RoundRequest struct {
	Date    string `json:"date"`
	Course  string `json:"course"`
	Type    string `json:"type" validate:"omitempty,oneof=practice tournament"`
	Holes   string `json:"holes" validate:"omitempty,oneof=9 18"`
	Strokes string `json:"strokes"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
	Notes   string `json:"notes"`
}

// apply pushes the submission into the open dialog, field by field, the
// way a user filling the form would. Empty selects keep their defaults.
func (r RoundRequest) apply(d *dialog.Controller) {
	_ = d.SetField(validate.FieldDate, r.Date)
	_ = d.SetField(validate.FieldCourse, r.Course)
	if r.Type != "" {
		_ = d.SetField("type", r.Type)
	}
	if r.Holes != "" {
		_ = d.SetField("holes", r.Holes)
	}
	_ = d.SetField(validate.FieldStrokes, r.Strokes)
	_ = d.SetField(validate.FieldMinutes, r.Minutes)
	_ = d.SetField(validate.FieldSeconds, r.Seconds)
	_ = d.SetField(validate.FieldNotes, r.Notes)
}

// PostRound logs a new round: open the dialog, fill it, submit. Invalid
// submissions come back as 400 with the per-field errors and the focus
// target the form should land on.
func PostRound(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()

		var req RoundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := edgeValidate.Struct(req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request")
			return
		}

		if err := acct.Dialog.Open(); err != nil {
			HandleError(c, app.Logger(), err, 409, "Dialog busy")
			return
		}
		req.apply(acct.Dialog)
		res, err := acct.Dialog.Submit(c.Request.Context())
		if err != nil {
			_ = acct.Dialog.Cancel()
			HandleError(c, app.Logger(), err, 500, "Failed to save round")
			return
		}
		if !res.Valid {
			focus, _ := dialog.FocusTarget(res)
			_ = acct.Dialog.Cancel()
			c.JSON(400, gin.H{
				"error":       "Validation failed",
				"fieldErrors": res.FieldErrors,
				"focus":       focus,
			})
			return
		}

		rounds := acct.Session.Rounds()
		HandleSuccess(c, app.Logger(), 201, rounds[len(rounds)-1], map[string]any{
			"message": lastMessage(acct),
		})
	}
}

// GetRounds returns the rendered table: newest round first, plus the
// round history in creation order.
func GetRounds(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()
		HandleSuccess(c, app.Logger(), 200, acct.Session.Rounds(), map[string]any{
			"table":      acct.Rows.Rows(),
			"roundCount": acct.Session.RoundCount(),
		})
	}
}

// PutRound edits an existing round through the same dialog path, with
// the round number preserved.
func PutRound(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()

		num, err := strconv.Atoi(c.Param("num"))
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid round number")
			return
		}
		var req RoundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := edgeValidate.Struct(req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request")
			return
		}

		if err := acct.Dialog.OpenForEdit(num); err != nil {
			status := 409
			if !errors.Is(err, dialog.ErrAlreadyOpen) {
				status = 404
			}
			HandleError(c, app.Logger(), err, status, "Cannot edit round")
			return
		}
		req.apply(acct.Dialog)
		res, err := acct.Dialog.Submit(c.Request.Context())
		if err != nil {
			_ = acct.Dialog.Cancel()
			HandleError(c, app.Logger(), err, 500, "Failed to save round")
			return
		}
		if !res.Valid {
			focus, _ := dialog.FocusTarget(res)
			_ = acct.Dialog.Cancel()
			c.JSON(400, gin.H{
				"error":       "Validation failed",
				"fieldErrors": res.FieldErrors,
				"focus":       focus,
			})
			return
		}

		idx, err := acct.Session.FindIndexByRoundNum(num)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Round missing after update")
			return
		}
		HandleSuccess(c, app.Logger(), 200, acct.Session.Rounds()[idx], map[string]any{
			"message": lastMessage(acct),
		})
	}
}

// DeleteRound removes a round from the store and its row from the table.
// Remaining rounds keep their numbers.
func DeleteRound(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()

		num, err := strconv.Atoi(c.Param("num"))
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid round number")
			return
		}
		idx, err := acct.Session.FindIndexByRoundNum(num)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "Round not found")
			return
		}
		if err := acct.Session.RemoveAt(c.Request.Context(), idx); err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to delete round")
			return
		}
		if err := acct.Renderer.RemoveRow(num); err != nil {
			app.Logger().Warnf("no table row for deleted round %d: %v", num, err)
		}
		acct.Notifier.Show("Round Deleted!")
		HandleSuccess(c, app.Logger(), 200, nil, map[string]any{"deleted": num})
	}
}

func lastMessage(acct *Account) string {
	if n := len(acct.Notifier.Messages); n > 0 {
		return acct.Notifier.Messages[n-1]
	}
	return ""
}
