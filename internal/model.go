package internal

import "encoding/json"

// RoundType distinguishes practice rounds from tournament rounds.
type RoundType string

const (
	RoundPractice   RoundType = "practice"
	RoundTournament RoundType = "tournament"
)

// Round is one entry in a user's round history. RoundNum is assigned by the
// session on append and is immutable afterwards; it identifies the round in
// the table and in edit/delete requests. Seconds is kept as a two-digit
// string so that "05" survives a save/load round trip unchanged.
type Round struct {
	RoundNum int       `json:"roundNum"`
	Date     string    `json:"date"` // "2006-01-02"
	Course   string    `json:"course"`
	Type     RoundType `json:"type"`
	Holes    int       `json:"holes"` // 9 or 18
	Strokes  int       `json:"strokes"`
	Minutes  int       `json:"minutes"`
	Seconds  string    `json:"seconds"` // "00".."59"
	SGS      string    `json:"SGS"`     // derived: "<strokes+minutes>:<seconds>"
	Notes    string    `json:"notes,omitempty"`
}

// AccountInfo holds the slice of account data the round tracker needs.
// Credentials and security questions live with the account service.
type AccountInfo struct {
	Email string `json:"email"`
}

// UserData is the per-account container persisted as a whole under the
// account's email key. IdentityInfo is owned by the profile feature and is
// carried opaquely so a rewrite never drops it. RoundCount counts rounds
// ever created and is never decremented on delete.
type UserData struct {
	AccountInfo  AccountInfo     `json:"accountInfo"`
	IdentityInfo json.RawMessage `json:"identityInfo,omitempty"`
	Rounds       []Round         `json:"rounds"`
	RoundCount   int             `json:"roundCount"`
}

// NewUserData returns an empty container for a fresh account.
func NewUserData(email string) *UserData {
	return &UserData{
		AccountInfo: AccountInfo{Email: email},
		Rounds:      []Round{},
	}
}

// AppError is the API-facing error shape.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
