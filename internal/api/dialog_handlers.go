package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/speedscore/roundtracker/internal/dialog"
)

// The dialog endpoints are the thin UI-binding surface: a client renders
// whatever the snapshot says and reports user actions back, one event
// per request. All dialog state lives server-side in the controller.

type fieldRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type keyRequest struct {
	Code  string `json:"code" binding:"required"`
	Shift bool   `json:"shift"`
}

type focusRequest struct {
	Name string `json:"name" binding:"required"`
}

func snapshot(acct *Account) gin.H {
	d := acct.Dialog
	visible := map[string]bool{}
	for _, f := range []string{"date", "course", "strokes", "minutes", "seconds", "notes"} {
		visible[f] = d.ErrorVisible(f)
	}
	return gin.H{
		"state":         d.State(),
		"mode":          d.Mode(),
		"title":         d.Title(),
		"form":          d.Form(),
		"focus":         d.Focus(),
		"errBoxVisible": d.ErrBoxVisible(),
		"visibleErrors": visible,
		"toastVisible":  acct.Notifier.Visible,
		"toastMessage":  lastMessage(acct),
	}
}

func GetDialog(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()
		c.JSON(200, snapshot(acct))
	}
}

func PostDialogOpen(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()
		if num := c.Query("edit"); num != "" {
			n, err := strconv.Atoi(num)
			if err != nil {
				HandleError(c, app.Logger(), err, 400, "Invalid round number")
				return
			}
			if err := acct.Dialog.OpenForEdit(n); err != nil {
				status := 409
				if !errors.Is(err, dialog.ErrAlreadyOpen) {
					status = 404
				}
				HandleError(c, app.Logger(), err, status, "Cannot open dialog")
				return
			}
		} else if err := acct.Dialog.Open(); err != nil {
			HandleError(c, app.Logger(), err, 409, "Cannot open dialog")
			return
		}
		c.JSON(200, snapshot(acct))
	}
}

func PostDialogField(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()
		var req fieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := acct.Dialog.SetField(req.Name, req.Value); err != nil {
			HandleError(c, app.Logger(), err, 400, "Cannot set field")
			return
		}
		c.JSON(200, snapshot(acct))
	}
}

func PostDialogFocus(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()
		var req focusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := acct.Dialog.SetFocus(req.Name); err != nil {
			HandleError(c, app.Logger(), err, 400, "Cannot set focus")
			return
		}
		c.JSON(200, snapshot(acct))
	}
}

func PostDialogKey(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()
		var req keyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		handled, err := acct.Dialog.HandleKey(dialog.Key{Code: req.Code, Shift: req.Shift})
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Cannot handle key")
			return
		}
		snap := snapshot(acct)
		snap["handled"] = handled
		c.JSON(200, snap)
	}
}

func PostDialogSubmit(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()
		res, err := acct.Dialog.Submit(c.Request.Context())
		if errors.Is(err, dialog.ErrNotOpen) {
			HandleError(c, app.Logger(), err, 400, "Dialog not open")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save round")
			return
		}
		snap := snapshot(acct)
		snap["valid"] = res.Valid
		if !res.Valid {
			snap["fieldErrors"] = res.FieldErrors
		}
		c.JSON(200, snap)
	}
}

func PostDialogCancel(app *App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, ok := account(c, app)
		if !ok {
			return
		}
		acct.Lock()
		defer acct.Unlock()
		if err := acct.Dialog.Cancel(); err != nil {
			HandleError(c, app.Logger(), err, 400, "Dialog not open")
			return
		}
		c.JSON(200, snapshot(acct))
	}
}
