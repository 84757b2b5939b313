// Package templates renders the HTML pages of the web interface.
// Views are embedded so the server binary is self-contained.
package templates

import (
	"embed"
	"html/template"
	"io"
)

//go:embed views/*.html
var viewFS embed.FS

// FlashMessage is a one-shot notification shown at the top of a page
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData holds fields common to every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

// LoginData is the data for the login page
type LoginData struct {
	PageData
	Player1Username string
	Player2Username string
	Error           string
}

// RegisterData is the data for the registration page
type RegisterData struct {
	PageData
	Username    string
	Error       string
	FieldErrors map[string]string
}

// Round is a resolved round shown in the history table
type Round struct {
	Round         int
	Player1Choice string
	Player2Choice string
	Winner        string
}

// WinBar is one bar of the win chart. Width is the bar's width as a
// percentage of the widest bar.
type WinBar struct {
	Name  string
	Wins  int
	Width int
}

// GameData is the data for the game page
type GameData struct {
	PageData
	Player1Name  string
	OpponentName string
	Mode         string
	Difficulty   string
	Choices      []string
	Locked       bool
	Completed    bool
	Score1       int
	Score2       int
	RoundsPlayed int
	RoundCap     int
	Result       string
	History      []Round
	Chart        []WinBar
	Error        string
}

func mustParse(page string) *template.Template {
	return template.Must(template.ParseFS(viewFS, "views/layout.html", "views/"+page))
}

var (
	loginTmpl    = mustParse("login.html")
	registerTmpl = mustParse("register.html")
	gameTmpl     = mustParse("game.html")
)

// Login renders the login page
func Login(w io.Writer, data LoginData) error {
	return loginTmpl.ExecuteTemplate(w, "layout", data)
}

// Register renders the registration page
func Register(w io.Writer, data RegisterData) error {
	return registerTmpl.ExecuteTemplate(w, "layout", data)
}

// Game renders the game page
func Game(w io.Writer, data GameData) error {
	return gameTmpl.ExecuteTemplate(w, "layout", data)
}
