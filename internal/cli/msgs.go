package cli

// Command descriptions
const (
	MsgRootShort = "Detect course schedule conflicts"
	MsgRootLong  = `coursegantt reads a course sheet (CSV or XLSX with the columns 課程名稱,
星期, 週次, 顏色(RGB) and an optional 勾選), finds courses that meet on the
same day in the same week and reports the conflicting week ranges.`
	MsgCheckShort    = "Print conflicting week ranges"
	MsgTimelineShort = "Draw the selected courses as a week timeline"
	MsgExportShort   = "Write conflicting week ranges to a CSV file"
	MsgServeShort    = "Serve conflict detection over HTTP"
	MsgVersionShort  = "Print version information"
)

// Flag descriptions
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/course-gantt/config.toml)"
	MsgFlagLogFile   = "Also write logs to this file (empty disables)"
	MsgFlagHorizon   = "Last valid week number"
	MsgFlagMode      = "Pairing for slots shared by 3+ courses: first-occupant or all-pairs"
	MsgFlagSheet     = "Worksheet to read from XLSX input (default first sheet)"
	MsgFlagDelimiter = "CSV field delimiter"
	MsgFlagReport    = "Also print the check report"
	MsgFlagStrict    = "Exit with an error when conflicts are found"
	MsgFlagColor     = "Colorize output: auto, always or never"
	MsgFlagOutput    = "Output CSV path"
	MsgFlagAddr      = "Listen address"
)

// Error messages
const (
	MsgErrLoadConfig  = "failed to load config: %w"
	MsgErrLoadCourses = "failed to load courses: %w"
	MsgErrExport      = "failed to export conflicts: %w"
	MsgErrConflicts   = "found %d conflicting week ranges"
	MsgErrColor       = "unknown color mode %q"
)
