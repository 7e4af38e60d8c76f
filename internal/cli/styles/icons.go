package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconGo        = "" //  go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconArrow   = "" // arrow right

	IconConfig  = "" // config
	IconFolder  = "" // folder
	IconDesktop = "" // desktop
	IconImage   = "" // image file
	IconPalette = "" // paint brush
	IconMoon    = "" // moon
	IconSun     = "" // sun
	IconClock   = "" // clock
	IconLink    = "" // link
)
