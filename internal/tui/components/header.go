package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/bubblechart/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	DataPath  string
	FirstYear int
	LastYear  int
	HasYears  bool
	Records   int
	SessionID string
}

// Header displays the dataset summary in a bar across the top.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("BUBBLECHART")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	items := []string{title}
	if h.data.DataPath != "" {
		items = append(items, h.item("Data: ", h.data.DataPath))
	}
	if h.data.HasYears {
		items = append(items, h.item("Years: ", fmt.Sprintf("%d–%d", h.data.FirstYear, h.data.LastYear)))
	}
	items = append(items, h.item("Records: ", fmt.Sprintf("%d", h.data.Records)))

	if h.data.SessionID != "" {
		short := h.data.SessionID
		if len(short) > 8 {
			short = short[:8]
		}
		items = append(items, h.item("Session: ", short))
	}

	headerStyle := styles.HeaderStyle
	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width).MaxHeight(1)
	}
	return headerStyle.Render(strings.Join(items, sep))
}

func (h *Header) item(label, value string) string {
	return styles.HeaderLabelStyle.Render(label) + styles.HeaderValueStyle.Render(value)
}
