package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// logPaneLines is how many log records the bottom pane shows.
const logPaneLines = 8

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorGray  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleStatus = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}).
			Background(colorCyan)

	styleCaret = lipgloss.NewStyle().
			Reverse(true)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())
)

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	snap := m.Snapshot()

	if snap.Mode == ModeHelp && snap.HelpVisible {
		return m.renderHelp()
	}
	if snap.TenantPickerVisible {
		return m.renderTenantPicker(snap)
	}
	return m.renderMain(snap)
}

// renderMain lays out search box, folder and model panes, log pane and
// status bar.
func (m *Model) renderMain(snap Snapshot) string {
	innerWidth := m.width - 2

	searchBox := m.renderSearchBox(snap, innerWidth)

	listHeight := m.height - lipgloss.Height(searchBox) - logPaneLines - 4
	if listHeight < 3 {
		listHeight = 3
	}
	folderWidth := max(innerWidth/3, 20)
	modelWidth := innerWidth - folderWidth - 4

	folderPane := styleBox.
		Width(folderWidth).
		Height(listHeight).
		Render(m.renderFolderList(snap, folderWidth, listHeight))
	modelPane := styleBox.
		Width(modelWidth).
		Height(listHeight).
		Render(m.renderModelTable(snap, modelWidth, listHeight))

	lists := lipgloss.JoinHorizontal(lipgloss.Top, folderPane, modelPane)

	logPane := styleBox.
		Width(innerWidth).
		Height(logPaneLines).
		Render(m.renderLogPane(snap, innerWidth))

	statusBar := m.renderStatusBar(snap)

	return lipgloss.JoinVertical(lipgloss.Left, searchBox, lists, logPane, statusBar)
}

func (m *Model) renderSearchBox(snap Snapshot, width int) string {
	title := styleTitle.Render("Search")

	runes := []rune(snap.SearchText)
	before := string(runes[:snap.SearchCursor])
	at := " "
	after := ""
	if snap.SearchCursor < len(runes) {
		at = string(runes[snap.SearchCursor])
		after = string(runes[snap.SearchCursor+1:])
	}

	// Keep the caret on screen when the text is wider than the box
	avail := width - 4
	if avail > 0 && runewidth.StringWidth(before) > avail {
		before = runewidth.TruncateLeft(before, runewidth.StringWidth(before)-avail, "…")
	}

	line := before + styleCaret.Render(at) + after
	return styleBox.Width(width).Render(title + "\n" + line)
}

func (m *Model) renderFolderList(snap Snapshot, width, height int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Folders"))
	b.WriteString("\n")

	if len(snap.Folders.Items) == 0 {
		b.WriteString(styleSubtle.Render("(no folders)"))
		return b.String()
	}

	visible := height - 1
	for i, folder := range snap.Folders.Items {
		if i >= visible {
			b.WriteString(styleSubtle.Render(fmt.Sprintf("… %d more", len(snap.Folders.Items)-visible)))
			break
		}
		line := runewidth.Truncate(fmt.Sprintf("%d  %s", folder.ID, folder.Name), width-2, "…")
		if i == snap.Folders.Selected {
			line = styleSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderModelTable(snap Snapshot, width, height int) string {
	var b strings.Builder
	title := "Models"
	if snap.ActiveFolder != nil {
		title = fmt.Sprintf("Models — %s", snap.ActiveFolder.Name)
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")

	if len(snap.Models.Items) == 0 {
		b.WriteString(styleSubtle.Render("(no models)"))
		return b.String()
	}

	nameWidth := max(width-50, 16)
	visible := height - 1
	for i, model := range snap.Models.Items {
		if i >= visible {
			b.WriteString(styleSubtle.Render(fmt.Sprintf("… %d more", len(snap.Models.Items)-visible)))
			break
		}
		line := runewidth.FillRight(runewidth.Truncate(model.Name, nameWidth, "…"), nameWidth) +
			runewidth.FillRight(model.State.Display(), 10) +
			model.UUID
		line = runewidth.Truncate(line, width-2, "…")
		if i == snap.Models.Selected {
			line = styleSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderLogPane(snap Snapshot, width int) string {
	if len(snap.LogLines) == 0 {
		return styleSubtle.Render("(log empty)")
	}
	lines := make([]string, len(snap.LogLines))
	for i, line := range snap.LogLines {
		lines[i] = runewidth.Truncate(line, width-2, "…")
	}
	return styleSubtle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderStatusBar(snap Snapshot) string {
	badge := styleBadge.Render(" " + snap.Mode.String() + " ")
	tenant := ""
	if snap.ActiveTenant != "" {
		tenant = styleSubtle.Render(" [" + snap.ActiveTenant + "]")
	}
	return badge + tenant + styleStatus.Render(" "+snap.Status)
}

func (m *Model) renderHelp() string {
	box := styleBox.
		BorderForeground(colorCyan).
		Padding(0, 2).
		Render(styleTitle.Render("Help") + "\n" + m.helpView.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderTenantPicker(snap Snapshot) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Select tenant"))
	b.WriteString("\n\n")

	if len(snap.Tenants.Items) == 0 {
		b.WriteString(styleSubtle.Render("No tenants configured"))
	}
	for i, tenant := range snap.Tenants.Items {
		line := tenant.Name
		if i == snap.Tenants.Selected {
			line = styleSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleStatus.Render(snap.Status))

	box := styleBox.
		BorderForeground(colorCyan).
		Padding(0, 2).
		Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
