package model

// Entry keys double as localization keys in the UI.
const (
	EntryDashboard = "dashboard"
	EntryAlerts    = "alerts"
	EntryHistory   = "history"
	EntryInsights  = "insights"
	EntrySettings  = "settings"
	EntryProfile   = "profile"
)

// FooterEntry is an icon with a caption in the footer strip
type FooterEntry struct {
	Key  string
	Icon string
}

// DefaultFooter returns the footer entries in display order
func DefaultFooter() []FooterEntry {
	return []FooterEntry{
		{Key: EntryDashboard, Icon: "🏠"},
		{Key: EntryInsights, Icon: "📊"},
		{Key: EntrySettings, Icon: "⚙️"},
		{Key: EntryProfile, Icon: "👤"},
	}
}

// NavItems returns the navigation bar entries. They carry no action.
func NavItems() []string {
	return []string{EntryDashboard, EntryAlerts, EntryHistory}
}
