package utils

// Embed status colors. Success or failure is always signalled through the
// embed color so callers never have to parse message text.
const (
	ColorSuccess = 0x2ecc71
	ColorFail    = 0xed4245
	ColorNeutral = 0x5865f2 // Discord Blurple
)
