package constants

// EntrySource identifies how a time entry was recorded
type EntrySource string

const (
	AppName           = "goaltrack"
	DefaultConfigPath = "~/.config/goaltrack/goaltrack.db"
	Version           = "v1.0.0"

	// DataVersion and DataSchema identify the current persisted document
	// format. Migration normalizes every loaded or imported document to
	// this pair.
	DataVersion = "2.0"
	DataSchema  = "goal-tracker-v2"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys. The store is a flat key-value namespace; the full
	// document lives under KeyGoals as a single JSON blob.
	KeyGoals          = "goals"
	KeyDarkMode       = "darkMode"
	KeyLastBackupDate = "lastBackupDate"
	KeyActiveTimers   = "timers"

	// Entry source constants
	SourceManual EntrySource = "manual"
	SourceTimer  EntrySource = "timer"

	// Settings defaults
	DefaultTimezone   = "Local"
	DefaultDateFormat = "YYYY-MM-DD"
	DefaultView       = "daily"
	DefaultGoalName   = "New Goal"
	DefaultGoalEmoji  = "⭐"

	// Export file naming
	ExportFilePrefix   = "goal-tracker-data-"
	RecoveryFilePrefix = "recovery-backup-"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "goaltrack-"
)

// ColorPalette is the fixed set of goal colors. A goal's color is assigned
// from its id: palette[(id-1) % len(palette)].
var ColorPalette = []string{
	"#667eea",
	"#f56565",
	"#48bb78",
	"#ed8936",
	"#9f7aea",
	"#38b2ac",
	"#ed64a6",
	"#ecc94b",
}

// DefaultMilestones is the preset offered by the milestone editor.
var DefaultMilestones = []float64{10, 25, 50, 100, 250, 500, 1000}
