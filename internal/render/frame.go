package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/buildify/internal/document"
)

// Resolution is the nominal screen size shown in the device info footer.
const Resolution = "375 × 667"

const statusTime = "9:41"

var (
	androidBezel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	iosBezel = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("236"))

	androidStatus = lipgloss.NewStyle().
			Background(lipgloss.Color("254")).
			Foreground(lipgloss.Color("236"))

	iosStatus = lipgloss.NewStyle().
			Background(lipgloss.Color("16")).
			Foreground(lipgloss.Color("255"))

	infoLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	infoValue = lipgloss.NewStyle().Bold(true)
)

// DeviceFrame draws the selected screen inside android or ios chrome with
// an info footer. A nil screen renders the "No screen selected" state.
func (r *Renderer) DeviceFrame(device document.DeviceType, screen *document.Screen, isPreview bool) string {
	width := r.width

	status := statusBar(device, width)

	var body string
	if screen == nil {
		body = lipgloss.Place(width, 3, lipgloss.Center, lipgloss.Center, infoLabel.Render("No screen selected"))
	} else if len(screen.Components) == 0 {
		body = lipgloss.Place(width, 3, lipgloss.Left, lipgloss.Top, "")
	} else {
		body = r.Forest(screen.Components, isPreview)
	}

	var bottom string
	bezel := androidBezel
	if device == document.DeviceIOS {
		bezel = iosBezel
		bottom = lipgloss.PlaceHorizontal(width, lipgloss.Center, "━━━━━━━━")
	} else {
		bottom = lipgloss.PlaceHorizontal(width, lipgloss.Center, "◁   ○   □")
	}

	phone := bezel.Render(lipgloss.JoinVertical(lipgloss.Left, status, body, bottom))
	return lipgloss.JoinVertical(lipgloss.Left, phone, DeviceInfo(device, screen, width+2))
}

func statusBar(device document.DeviceType, width int) string {
	style := androidStatus
	if device == document.DeviceIOS {
		style = iosStatus
	}
	indicators := "••• ▭"
	gap := width - 2 - lipgloss.Width(statusTime) - lipgloss.Width(indicators)
	if gap < 1 {
		gap = 1
	}
	return style.Padding(0, 1).Width(width).Render(statusTime + strings.Repeat(" ", gap) + indicators)
}

// DeviceInfo renders the device, resolution and top-level component count.
func DeviceInfo(device document.DeviceType, screen *document.Screen, width int) string {
	count := 0
	if screen != nil {
		count = len(screen.Components)
	}
	rows := [][2]string{
		{"Device:", device.Label()},
		{"Resolution:", Resolution},
		{"Components:", fmt.Sprint(count)},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := infoLabel.Render(row[0])
		value := infoValue.Render(row[1])
		gap := width - lipgloss.Width(label) - lipgloss.Width(value)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, label+strings.Repeat(" ", gap)+value)
	}
	return strings.Join(lines, "\n")
}
