package workflow

// State is a step of the decode run.
type State int

const (
	StateStart State = iota
	StateConfigLoaded
	StateProductResolved
	StateBinariesValidated
	StateDeviceTypeChosen
	StateCommandBuilt
	StateDecoded
	StateViewerLaunched
	StateDone
)

var stateNames = [...]string{
	StateStart:             "start",
	StateConfigLoaded:      "config_loaded",
	StateProductResolved:   "product_resolved",
	StateBinariesValidated: "binaries_validated",
	StateDeviceTypeChosen:  "device_type_chosen",
	StateCommandBuilt:      "command_built",
	StateDecoded:           "decoded",
	StateViewerLaunched:    "viewer_launched",
	StateDone:              "done",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
