package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/tide/internal/ui/style"
)

const fieldWidth = 12

// printer renders styled lines to a command's output and keeps the first write error.
// Colors are dropped when w is not a terminal or NO_COLOR is set.
type printer struct {
	w   io.Writer
	r   *lipgloss.Renderer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w: w,
		r: lipgloss.NewRenderer(w),
	}
}

func (p *printer) style(s lipgloss.Style) lipgloss.Style {
	return s.Renderer(p.r)
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) field(label, value string) {
	p.line(p.style(style.Label).Width(fieldWidth).Render(label) + value)
}
