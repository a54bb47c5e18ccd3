package tui

// Pure lookup tables from mode to display text. Transition logic never
// builds display strings inline; it goes through these so hint and help
// text can be asserted independently of dispatch.

// StatusHintNormal is also shown when an unbound key is pressed in Normal
// mode.
const StatusHintNormal = "Press <h> for help or <q> to exit"

const (
	statusHintSearch = "Type a query, <Enter> to search, <Esc> to return to Normal mode"
	statusHintFolder = "Press <Esc> to return to Normal mode"
	statusHintModel  = "Press <Esc> to return to Normal mode"
	statusHintMatch  = "Press <Esc> to return to Normal mode"
	statusHintTenant = "Select a tenant, <Enter> to switch, <Esc> to cancel"
)

const normalModeHelp = `
<q>      Exit the program
<f>      Switch to Folder mode
<s>      Switch to Search mode
<m>      Switch to Model mode
<c>      Switch to Match mode
<t>      Switch tenant

To exit this help, press any key.
`

const searchModeHelp = `
<Esc>        Exit to Normal mode
<Backspace>  Delete the previous character
<Enter>      Execute search
<Ctrl+u>     Clear the query
<Ctrl+v>     Paste from clipboard
`

const folderModeHelp = `
<Esc>    Exit to Normal mode
<Tab>    Switch to Model mode
<r>      Reload the list of folders
<Enter>  Load the models of the selected folder
`

const modelModeHelp = `
<Esc>    Exit to Normal mode
<Tab>    Switch to Folder mode
<Enter>  Select the model for comparison
<y>      Copy the model UUID to the clipboard
`

const matchModeHelp = `
<Esc>    Exit to Normal mode
`

const tenantModeHelp = `
<Esc>    Close the tenant picker
<Enter>  Switch to the selected tenant
`

// Hint returns the fixed status line shown on entering a mode.
func Hint(mode Mode) string {
	switch mode {
	case ModeSearch:
		return statusHintSearch
	case ModeFolder:
		return statusHintFolder
	case ModeModel:
		return statusHintModel
	case ModeMatch:
		return statusHintMatch
	case ModeTenant:
		return statusHintTenant
	default:
		return StatusHintNormal
	}
}

// HelpBody returns the help overlay text for a mode.
func HelpBody(mode Mode) string {
	switch mode {
	case ModeSearch:
		return searchModeHelp
	case ModeFolder:
		return folderModeHelp
	case ModeModel:
		return modelModeHelp
	case ModeMatch:
		return matchModeHelp
	case ModeTenant:
		return tenantModeHelp
	default:
		return normalModeHelp
	}
}
