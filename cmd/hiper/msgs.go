package hiper

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A tiny, extensible terminal helper for focused work"
	MsgRootLong       = "hiper helps you plan, run and review focus sessions from the terminal:\nlive timers, goal planning against deadlines, a timestamped log and a\nreading list, all stored as plain CSV files."
	MsgFokusShort     = "Start a focus session (live timer, save/cancel)"
	MsgFokusLong      = "Start a focus session with contextual messages and a live timer.\nPress space to pause; while paused, save, discard, resume or quit."
	MsgPostfokusShort = "Show statistics or add a past focus session"
	MsgPostfokusLong  = "With --duration, record a past focus session. Without it, show\nstatistics over everything recorded so far."
	MsgPrefokusShort  = "Plan focus goals with estimates and optional deadlines"
	MsgPrefokusLong   = "Create or update goals with time estimates and optional deadlines.\nWith a deadline, hiper calculates when you should start working to\nmeet it, given your configured workable hours per day."
	MsgFinishShort    = "Finish a goal, keeping only its time worked"
	MsgLogShort       = "Append a message or view recent log entries"
	MsgLogLong        = "Append a message with the current timestamp to log.csv, or list\nentries from a recent window with --last (e.g. 5m, 1h)."
	MsgReadShort      = "Manage the reading list and track progress"
	MsgSetShort       = "Set configuration options"
	MsgBackupShort    = "Back up the hiper data directory"
	MsgInstallShort   = "Install hiper onto your PATH"
	MsgInstallLong    = "Mark the hiper binary executable and register its bin directory on\nyour PATH by appending an export line to your shell startup file.\nRunning install twice never duplicates the line."
	MsgVersionShort   = "Print version information"

	// Install output
	MsgInstallChmod          = "Made %s executable\n"
	MsgInstallAppended       = "Added %s to PATH in %s\n"
	MsgInstallAlreadyPresent = "PATH entry already present in %s, nothing to do\n"
	MsgInstallNext           = "\nReload your shell (e.g. 'source %s') and run 'hiper --help' to verify.\n"

	// Session output
	MsgSavedSession       = "Saved session: %s\n"
	MsgSavedPath          = "Saved to: %s\n"
	MsgSessionDiscarded   = "Session cancelled; nothing saved.\n"
	MsgExitedWithoutSave  = "Exited without saving. Use --auto-save to keep quit sessions.\n"
	MsgStatsHeader        = "Statistics\n"
	MsgStatsHeaderFor     = "Statistics for %s\n"
	MsgStatsHeaderByTitle = "Statistics by title\n"
	MsgStatsDivider       = "--------------------------------\n"

	// Goal output
	MsgNoGoals         = "No goals found with current estimates.\n"
	MsgNoGoalsAll      = "No goals found in goals.csv.\n"
	MsgGoalsHeader     = "Goals with current estimates:\n"
	MsgGoalsHeaderAll  = "All goals:\n"
	MsgGoalFinished    = "Finished goal '%s': cleared everything except time worked\n"
	MsgGoalNotSet      = "(not set)"
	MsgGoalDone        = "0 (completed!)"
	MsgGoalStartByHint = "%s morning"

	// Log output
	MsgLogged   = "Logged '%s' to %s\n"
	MsgNoRecent = "No log entries in the last %s\n"
	MsgLogLine  = "%s - %s\n"

	// Reading list output
	MsgBookAdded    = "Added '%s' with %d pages\n"
	MsgBookUpdated  = "Updated '%s': current page %d of %d\n"
	MsgReadProgress = "Progress for '%s':\n"
	MsgReadStartAsk = "Start reading? (y/n): "

	// Settings output
	MsgSettingsHeader  = "Current settings:\n"
	MsgSettingsUpdated = "Updated: %s\n"
	MsgSettingsNone    = "No settings specified. Use --show to see current settings.\n"

	// Backup output
	MsgBackupCreated = "Backup created at %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)

// MsgUsageTemplate is the usage template for all commands. Section
// headers go through the bold/boldUpper template funcs registered in
// initTemplateFormatting.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{bold .CommandPath}} [command] --help" for more information about a command.{{end}}
`
