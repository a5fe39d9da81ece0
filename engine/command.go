package engine

// Command is a discrete user action applied between frames.
type Command int

const (
	CommandAddCurve Command = iota
	CommandRemoveActiveCurve
	CommandSelectNextCurve
	CommandRemoveLastPoint
	CommandSpeedUp
	CommandSpeedDown
	CommandMoreSamples
	CommandFewerSamples
	CommandToggleHelp
	CommandTogglePause
	CommandRestart
)

var commandNames = map[Command]string{
	CommandAddCurve:          "add_curve",
	CommandRemoveActiveCurve: "remove_active_curve",
	CommandSelectNextCurve:   "select_next_curve",
	CommandRemoveLastPoint:   "remove_last_point",
	CommandSpeedUp:           "speed_up",
	CommandSpeedDown:         "speed_down",
	CommandMoreSamples:       "more_samples",
	CommandFewerSamples:      "fewer_samples",
	CommandToggleHelp:        "toggle_help",
	CommandTogglePause:       "toggle_pause",
	CommandRestart:           "restart",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}
