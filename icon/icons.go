package icon

// Icon identifies a renderable UI symbol in the global registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warning
	Progress
	Skip
	Video
)

// icons maps each Icon identifier to its per-variant visual definitions.
var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "[ok]",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "[fail]",
		squares: "🟥",
	},
	Warning: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "[warn]",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "[..]",
		squares: "🟦",
	},
	Skip: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   "[skip]",
		squares: "⬜",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "[video]",
		squares: "🟪",
	},
}
