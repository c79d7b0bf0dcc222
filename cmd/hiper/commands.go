package hiper

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mroximut/hiper/pkg/commands/backup"
	"github.com/mroximut/hiper/pkg/commands/finish"
	"github.com/mroximut/hiper/pkg/commands/fokus"
	"github.com/mroximut/hiper/pkg/commands/install"
	"github.com/mroximut/hiper/pkg/commands/logbook"
	"github.com/mroximut/hiper/pkg/commands/postfokus"
	"github.com/mroximut/hiper/pkg/commands/prefokus"
	"github.com/mroximut/hiper/pkg/commands/read"
	"github.com/mroximut/hiper/pkg/commands/set"
	"github.com/mroximut/hiper/pkg/paths"
	"github.com/mroximut/hiper/pkg/storage"
)

func newFokusCmd() *cobra.Command {
	var (
		title    string
		autoSave bool
	)

	cmd := &cobra.Command{
		Use:   "fokus",
		Short: MsgFokusShort,
		Long:  MsgFokusLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}

			result, err := fokus.Run(fokus.FokusOptions{
				DataDir:   dataDir,
				Title:     title,
				AutoSave:  autoSave,
				ShowClock: cfg.ClockEnabled(),
				IsTTY:     stdoutIsTTY(),
				Now:       time.Now(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case result.Saved():
				fmt.Fprintf(out, MsgSavedSession, storage.FormatHMS(result.Session.Duration))
				fmt.Fprintf(out, MsgSavedPath, result.Path)
			case result.Outcome == fokus.OutcomeDiscarded:
				fmt.Fprint(out, MsgSessionDiscarded)
			default:
				fmt.Fprint(out, MsgExitedWithoutSave)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Optional name/title for the session")
	cmd.Flags().BoolVar(&autoSave, "auto-save", false, "Automatically save when quitting or interrupted")
	return cmd
}

func newPostfokusCmd() *cobra.Command {
	var (
		duration string
		start    string
		end      string
		title    string
		byTitle  bool
	)

	cmd := &cobra.Command{
		Use:   "postfokus",
		Short: MsgPostfokusShort,
		Long:  MsgPostfokusLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			now := time.Now()

			if duration == "" {
				if byTitle && title == "" {
					stats, err := postfokus.StatisticsByTitle(postfokus.StatsOptions{DataDir: dataDir, Now: now})
					if err != nil {
						return err
					}
					printStatsByTitle(out, stats)
					return nil
				}
				stats, err := postfokus.Statistics(postfokus.StatsOptions{DataDir: dataDir, Title: title, Now: now})
				if err != nil {
					return err
				}
				printStats(out, stats)
				return nil
			}

			result, err := postfokus.Record(postfokus.RecordOptions{
				DataDir:  dataDir,
				Title:    title,
				Duration: duration,
				Start:    start,
				End:      end,
				Now:      now,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, MsgSavedSession, storage.FormatHMS(result.Session.Duration))
			fmt.Fprintf(out, MsgSavedPath, result.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&duration, "duration", "d", "", "Duration to record (e.g. 25m, 1h30m)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start time (ISO or HH:MM); inferred when omitted")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End time (ISO or HH:MM); inferred when omitted")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Session title; without --duration, filters statistics")
	cmd.Flags().BoolVar(&byTitle, "titles", false, "Show per-title breakdown")
	return cmd
}

func printStats(w io.Writer, stats *postfokus.Stats) {
	if stats.Title != "" {
		fmt.Fprintf(w, MsgStatsHeaderFor, stats.Title)
	} else {
		fmt.Fprint(w, MsgStatsHeader)
	}
	if stats.Sessions == 0 {
		fmt.Fprintf(w, "sessions: 0\n")
		return
	}
	fmt.Fprint(w, MsgStatsDivider)
	fmt.Fprintf(w, "sessions: %d\n", stats.Sessions)
	fmt.Fprintf(w, "total: %s\n", storage.FormatHMS(stats.TotalSeconds))
	fmt.Fprintf(w, "avg: %s\n", storage.FormatHMS(stats.AvgSeconds))
	fmt.Fprintf(w, "today: %s\n", storage.FormatHMS(stats.TodaySeconds))
	fmt.Fprintf(w, "week: %s\n", storage.FormatHMS(stats.WeekSeconds))
	fmt.Fprintf(w, "month: %s\n", storage.FormatHMS(stats.MonthSeconds))
}

func printStatsByTitle(w io.Writer, stats []postfokus.TitleStats) {
	fmt.Fprint(w, MsgStatsHeaderByTitle)
	if len(stats) == 0 {
		fmt.Fprintf(w, "sessions: 0\n")
		return
	}
	for _, entry := range stats {
		label := entry.Title
		if label == "" {
			label = "(unnamed)"
		}
		fmt.Fprint(w, MsgStatsDivider)
		fmt.Fprintf(w, "%s sessions: %d\n", label, entry.Sessions)
		fmt.Fprintf(w, "%s total: %s\n", label, storage.FormatHMS(entry.TotalSeconds))
	}
}

func newPrefokusCmd() *cobra.Command {
	var (
		title    string
		estimate string
		deadline string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "prefokus",
		Short: MsgPrefokusShort,
		Long:  MsgPrefokusLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			now := time.Now()

			title = strings.TrimSpace(title)
			if title == "" {
				if estimate != "" || deadline != "" {
					return fmt.Errorf("--title is required when setting an estimate or deadline")
				}
				summaries, err := prefokus.List(prefokus.ListOptions{
					DataDir:    dataDir,
					All:        all,
					WorkPerDay: cfg.WorkPerDay(),
					Now:        now,
				})
				if err != nil {
					return err
				}
				printGoalList(out, summaries, all)
				return nil
			}

			summary, err := prefokus.Plan(prefokus.PlanOptions{
				DataDir:    dataDir,
				Title:      title,
				Estimate:   estimate,
				Deadline:   deadline,
				WorkPerDay: cfg.WorkPerDay(),
				Now:        now,
			})
			if err != nil {
				return err
			}
			printGoalDetails(out, *summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Goal title")
	cmd.Flags().StringVarP(&estimate, "estimate", "e", "", "Estimated time needed (e.g. 20h, 1h30m); required for new goals")
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline date (YYYY-MM-DD); the deadline day is not workable")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List all goals, even without an estimate")
	return cmd
}

func printGoalList(w io.Writer, summaries []prefokus.GoalSummary, all bool) {
	if len(summaries) == 0 {
		if all {
			fmt.Fprint(w, MsgNoGoalsAll)
		} else {
			fmt.Fprint(w, MsgNoGoals)
		}
		return
	}

	if all {
		fmt.Fprint(w, MsgGoalsHeaderAll)
		for _, s := range summaries {
			parts := []string{s.Goal.Title}
			if s.Goal.HasEstimate() {
				parts = append(parts, "estimate "+storage.FormatHMS(s.Goal.EstimateSeconds))
			} else {
				parts = append(parts, "estimate "+MsgGoalNotSet)
			}
			parts = append(parts, "worked "+storage.FormatHMS(s.WorkedSinceEstimate))
			if s.Goal.HasEstimate() {
				parts = append(parts, "remaining "+storage.FormatHMS(s.RemainingSeconds()))
			}
			if !s.Goal.Deadline.IsZero() {
				parts = append(parts, "deadline "+s.Goal.Deadline.Format("2006-01-02"))
			}
			if !s.Goal.StartBy.IsZero() {
				parts = append(parts, "start by "+s.Goal.StartBy.Format("2006-01-02"))
			}
			fmt.Fprintf(w, "  - %s\n", strings.Join(parts, ", "))
		}
		return
	}

	fmt.Fprint(w, MsgGoalsHeader)
	for i, s := range summaries {
		printGoalDetails(w, s)
		if i < len(summaries)-1 {
			fmt.Fprintln(w)
		}
	}
}

func printGoalDetails(w io.Writer, s prefokus.GoalSummary) {
	fmt.Fprintf(w, "Goal: %s\n", s.Goal.Title)
	fmt.Fprintf(w, "  Total time worked: %s\n", storage.FormatHMS(s.TotalWorkedSeconds))
	if !s.Goal.EstimateTimestamp.IsZero() {
		fmt.Fprintf(w, "  Time worked (after estimate): %s\n", storage.FormatHMS(s.WorkedSinceEstimate))
	} else {
		fmt.Fprintf(w, "  Time worked: %s\n", storage.FormatHMS(s.WorkedSinceEstimate))
	}

	if !s.Goal.HasEstimate() {
		fmt.Fprintf(w, "  Estimate: %s\n", MsgGoalNotSet)
		fmt.Fprintf(w, "  Deadline: %s\n", MsgGoalNotSet)
		fmt.Fprintf(w, "  Start by: %s\n", MsgGoalNotSet)
		return
	}

	fmt.Fprintf(w, "  Estimate: %s\n", storage.FormatHMS(s.Goal.EstimateSeconds))
	if s.RemainingSeconds() > 0 {
		fmt.Fprintf(w, "  Remaining: %s\n", storage.FormatHMS(s.RemainingSeconds()))
	} else {
		fmt.Fprintf(w, "  Remaining: %s\n", MsgGoalDone)
	}

	if s.Goal.Deadline.IsZero() {
		fmt.Fprintf(w, "  Deadline: %s\n", MsgGoalNotSet)
		fmt.Fprintf(w, "  Start by: (not set - deadline required)\n")
		return
	}
	fmt.Fprintf(w, "  Deadline: %s\n", s.Goal.Deadline.Format("2006-01-02"))
	if s.Goal.StartBy.IsZero() {
		fmt.Fprintf(w, "  Start by: (not calculated)\n")
	} else {
		fmt.Fprintf(w, "  Start by: "+MsgGoalStartByHint+"\n", s.Goal.StartBy.Format("2006-01-02"))
	}
}

func newFinishCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "finish",
		Short: MsgFinishShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}
			title = strings.TrimSpace(title)
			if title == "" {
				return fmt.Errorf("title cannot be empty")
			}
			if _, err := finish.Finish(finish.FinishOptions{DataDir: dataDir, Title: title}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgGoalFinished, title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title of the goal to finish")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newLogCmd() *cobra.Command {
	var last string

	cmd := &cobra.Command{
		Use:   "log [message]",
		Short: MsgLogShort,
		Long:  MsgLogLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			now := time.Now()

			if last != "" {
				entries, err := logbook.List(logbook.ListOptions{DataDir: dataDir, Last: last, Now: now})
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Fprintf(out, MsgNoRecent, last)
					return nil
				}
				for _, e := range entries {
					fmt.Fprintf(out, MsgLogLine, e.Timestamp.Format(time.RFC3339), e.Message)
				}
				return nil
			}

			result, err := logbook.Append(logbook.AppendOptions{
				DataDir: dataDir,
				Message: strings.Join(args, " "),
				Now:     now,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, MsgLogged, result.Entry.Message, result.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&last, "last", "l", "", "Show entries from the last duration (e.g. 5m, 1h)")
	return cmd
}

func newSetCmd() *cobra.Command {
	var (
		nick       string
		savedir    string
		clock      string
		workPerDay string
		barWidth   int
		geminiAPI  string
		show       bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: MsgSetShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if show {
				printSettings(out, set.Show(cfg))
				return nil
			}

			opts := set.SetOptions{Config: cfg}
			if cmd.Flags().Changed("nick") {
				opts.Nick = &nick
			}
			if cmd.Flags().Changed("savedir") {
				opts.Savedir = &savedir
			}
			if cmd.Flags().Changed("clock") {
				opts.Clock = &clock
			}
			if cmd.Flags().Changed("work-per-day") {
				opts.WorkPerDay = &workPerDay
			}
			if cmd.Flags().Changed("bar-width") {
				opts.BarWidth = &barWidth
			}
			if cmd.Flags().Changed("gemini-api") {
				opts.GeminiAPI = &geminiAPI
			}

			result, err := set.Apply(opts)
			if err != nil {
				return err
			}
			if len(result.Updated) == 0 {
				fmt.Fprint(out, MsgSettingsNone)
				return nil
			}
			fmt.Fprintf(out, MsgSettingsUpdated, strings.Join(result.Updated, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&nick, "nick", "", "Your nickname/name")
	cmd.Flags().StringVar(&savedir, "savedir", "", "Directory to save data CSVs (absolute path)")
	cmd.Flags().StringVar(&clock, "clock", "", "Show the running clock in fokus (true/false)")
	cmd.Flags().StringVar(&workPerDay, "work-per-day", "", "Workable time per day for goal planning (e.g. 8h)")
	cmd.Flags().IntVar(&barWidth, "bar-width", 0, "Width of the reading progress bar")
	cmd.Flags().StringVar(&geminiAPI, "gemini-api", "", "Gemini API key")
	cmd.Flags().BoolVar(&show, "show", false, "Show current settings")
	return cmd
}

func printSettings(w io.Writer, s set.Settings) {
	fmt.Fprint(w, MsgSettingsHeader)
	fmt.Fprintf(w, "  nick: %s\n", orPlaceholder(s.Nick, "(not set)"))
	fmt.Fprintf(w, "  savedir: %s\n", orPlaceholder(s.Savedir, "(default)"))
	fmt.Fprintf(w, "  clock: %t\n", s.Clock)
	fmt.Fprintf(w, "  work_per_day: %s\n", s.WorkPerDay)
	fmt.Fprintf(w, "  bar_width: %d\n", s.BarWidth)
	fmt.Fprintf(w, "  gemini_api: %s\n", orPlaceholder(s.GeminiAPI, "(not set)"))
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: MsgBackupShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}
			result, err := backup.Backup(backup.BackupOptions{DataDir: dataDir, Now: time.Now()})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgBackupCreated, result.Path)
			return nil
		},
	}
}

func newReadCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "read",
		Short: MsgReadShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return cmd.Help()
			}
			cfg, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			book, err := read.Progress(dataDir, title)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, MsgReadProgress, book.Title)
			fmt.Fprintf(out, "%s %d%% (%d/%d pages)\n",
				renderProgressBar(read.Percent(*book), cfg.BarWidth()),
				int(read.Percent(*book)), book.CurrentPage, book.Length)

			if !stdoutIsTTY() {
				return nil
			}
			fmt.Fprint(out, MsgReadStartAsk)
			if !askYesNo(cmd.InOrStdin()) {
				return nil
			}

			result, err := fokus.Run(fokus.FokusOptions{
				DataDir:   dataDir,
				Title:     book.Title,
				ShowClock: cfg.ClockEnabled(),
				IsTTY:     true,
				Now:       time.Now(),
			})
			if err != nil {
				return err
			}
			if result.Saved() {
				fmt.Fprintf(out, MsgSavedSession, storage.FormatHMS(result.Session.Duration))
				fmt.Fprintf(out, MsgSavedPath, result.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title of the book to show progress for")

	cmd.AddCommand(newReadAddCmd())
	cmd.AddCommand(newReadUpdateCmd())
	return cmd
}

func newReadAddCmd() *cobra.Command {
	var (
		title  string
		length int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new book to the reading list",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}
			book, err := read.Add(read.AddOptions{DataDir: dataDir, Title: strings.TrimSpace(title), Length: length})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgBookAdded, book.Title, book.Length)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title of the book")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Total number of pages")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("length")
	return cmd
}

func newReadUpdateCmd() *cobra.Command {
	var (
		title string
		plus  int
		at    int
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update reading progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dataDir, err := resolveDataDir()
			if err != nil {
				return err
			}

			opts := read.UpdateOptions{DataDir: dataDir, Title: strings.TrimSpace(title)}
			if cmd.Flags().Changed("plus") {
				opts.Plus = &plus
			}
			if cmd.Flags().Changed("at") {
				opts.At = &at
			}

			book, err := read.Update(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgBookUpdated, book.Title, book.CurrentPage, book.Length)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title of the book")
	cmd.Flags().IntVarP(&plus, "plus", "p", 0, "Increment the current page by this amount")
	cmd.Flags().IntVarP(&at, "at", "a", 0, "Set the current page to this value")
	_ = cmd.MarkFlagRequired("title")
	cmd.MarkFlagsMutuallyExclusive("plus", "at")
	return cmd
}

var (
	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	barEmptyStyle  = lipgloss.NewStyle().Faint(true)
)

// renderProgressBar draws a filled/empty bar of the given width.
func renderProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

func askYesNo(in io.Reader) bool {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
	}
	return false
}

func newInstallCmd() *cobra.Command {
	var (
		repoRoot string
		rcFile   string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: MsgInstallShort,
		Long:  MsgInstallLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.OutOrStdout(), repoRoot, rcFile)
		},
	}

	cmd.Flags().StringVar(&repoRoot, "repo-root", "", "Repository root containing bin/hiper (default: inferred from the binary)")
	cmd.Flags().StringVar(&rcFile, "rc-file", "", "Shell startup file to append the PATH export to (default: resolved from $SHELL)")
	return cmd
}

// runInstall gathers everything environment-derived (home, shell, repo
// root) here at the edge and hands plain paths to the install command.
func runInstall(out io.Writer, repoRoot, rcFile string) error {
	if repoRoot == "" {
		repoRoot = pathsExecutableRepoRootOrCwd()
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}

	result, err := install.Install(install.InstallOptions{
		RepoRoot:    repoRoot,
		HomeDir:     homeDir,
		Shell:       paths.DetectShell(os.Getenv(paths.EnvShell)),
		StartupFile: rcFile,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, MsgInstallChmod, result.BinaryPath)
	if result.AlreadyPresent {
		fmt.Fprintf(out, MsgInstallAlreadyPresent, result.StartupFile)
	} else {
		fmt.Fprintf(out, MsgInstallAppended, result.PathEntry, result.StartupFile)
	}
	fmt.Fprintf(out, MsgInstallNext, result.StartupFile)
	return nil
}

func pathsExecutableRepoRootOrCwd() string {
	if root := paths.ExecutableRepoRoot(); root != "" {
		return root
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
