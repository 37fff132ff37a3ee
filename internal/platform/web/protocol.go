// Package web streams Sacrifice Runner frames to a browser canvas over a
// websocket. Each connection owns one game session.
package web

import (
	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
)

// Message types sent by the server.
const (
	TypeFrame    = "frame"
	TypeGameOver = "gameOver"
)

// serverMessage is one JSON text frame sent to the browser.
type serverMessage struct {
	Type  string              `json:"type"`
	Frame *sacrifice.Snapshot `json:"frame,omitempty"`
	Score int                 `json:"score,omitempty"`
}

// clientMessage is one JSON text frame sent by the browser.
// Action is "jump", "pause" or "restart".
type clientMessage struct {
	Action string `json:"action"`
}

// actionFor maps a client action name to a core action.
func actionFor(name string) core.Action {
	switch name {
	case "jump":
		return core.ActionJump
	case "pause":
		return core.ActionPause
	case "restart":
		return core.ActionRestart
	}
	return core.ActionNone
}
