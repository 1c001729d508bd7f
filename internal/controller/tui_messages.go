package controller

import m "github.com/mouse-blink/deflake/internal/model"

// Message types.
type eventMsg struct {
	event m.Event
}

type finishedMsg struct{}
