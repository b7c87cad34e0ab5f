package replay

// FrameInput records input state for a single host tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	RL bool `json:"rl,omitempty"` // MX/MY are relative device counts
	P  bool `json:"p,omitempty"`  // Pause toggle
	R  bool `json:"r,omitempty"`  // Reset
	Q  bool `json:"q,omitempty"`  // Quit
}

// ScreenInfo is the screen the session was recorded on
type ScreenInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Catalog   string       `json:"catalog"`
	StartTime string       `json:"startTime"`
	Screen    ScreenInfo   `json:"screen"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into every new recording
const Version = "1.0"
