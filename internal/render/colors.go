package render

// Color constants for the taskdeck terminal theme
const (
	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Titles, primary values
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Muted text (cancelled tasks, empty cells)

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Headers, accent elements
	ColorAccentBright = "#A78BFA" // Highlights

	// State Colors
	ColorError   = "#EF4444" // Urgent priority, overdue dates
	ColorSuccess = "#22C55E" // Done status
	ColorWarning = "#F59E0B" // High priority, due soon
	ColorInfo    = "#3B82F6" // In-progress status
)
