package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/render"
	"github.com/layerviz/layersvg/pkg/scene"
)

// newInspectCmd creates the inspect command for summarizing scene layers.
func newInspectCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect [scene]",
		Short: "Summarize the layers of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse layers interactively")
	return cmd
}

func runInspect(ctx context.Context, input string, interactive bool) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Inspecting %s", input)

	layers, err := scene.Load(input)
	if err != nil {
		return err
	}
	summaries := summarizeLayers(layers)

	if interactive {
		return browseLayers(summaries)
	}

	fmt.Println(StyleTitle.Render(input))
	fmt.Println(layerTable(summaries, -1))
	return nil
}

// layerSummary is one row of the inspect output.
type layerSummary struct {
	Name    string
	Kind    string
	Size    string
	Bounds  string
	Opacity string
}

// summarizeLayers converts each layer separately so a single bad layer
// shows its error in the table instead of hiding the rest of the scene.
func summarizeLayers(layers []layer.Layer) []layerSummary {
	out := make([]layerSummary, len(layers))
	for i, l := range layers {
		out[i] = layerSummary{
			Name:    l.Name(),
			Kind:    l.Kind.String(),
			Size:    sizeOf(l),
			Bounds:  boundsOf(l),
			Opacity: fmt.Sprintf("%g", opacityOf(l)),
		}
	}
	return out
}

// sizeOf describes the layer's data volume in its kind's natural unit.
func sizeOf(l layer.Layer) string {
	switch l.Kind {
	case layer.KindImage, layer.KindLabels:
		if len(l.Image.Levels) == 0 {
			return "no data"
		}
		g := l.Image.Levels[0]
		if len(l.Image.Levels) > 1 {
			return fmt.Sprintf("%dx%d px (%d levels)", g.Rows, g.Cols, len(l.Image.Levels))
		}
		return fmt.Sprintf("%dx%d px", g.Rows, g.Cols)
	case layer.KindPoints:
		return fmt.Sprintf("%d points", l.Points.Coords.Rows)
	case layer.KindShapes:
		return fmt.Sprintf("%d shapes", len(l.Shapes.Paths))
	case layer.KindVectors:
		return fmt.Sprintf("%d vectors", l.Vectors.Field.N)
	default:
		return "unknown"
	}
}

// boundsOf reports the layer's transformed extrema.
func boundsOf(l layer.Layer) string {
	_, ext, err := render.Convert(l)
	if err != nil {
		return "error: " + err.Error()
	}
	if ext.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("[%g %g] %s [%g %g]", ext.Min[0], ext.Min[1], iconArrow, ext.Max[0], ext.Max[1])
}

func opacityOf(l layer.Layer) float64 {
	switch l.Kind {
	case layer.KindImage, layer.KindLabels:
		return l.Image.Meta.Opacity
	case layer.KindPoints:
		return l.Points.Meta.Opacity
	case layer.KindShapes:
		return l.Shapes.Meta.Opacity
	case layer.KindVectors:
		return l.Vectors.Meta.Opacity
	default:
		return 0
	}
}

// layerTable renders the summaries as a bordered table. A non-negative
// cursor highlights that row for the interactive browser.
func layerTable(summaries []layerSummary, cursor int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	normalStyle := lipgloss.NewStyle().Foreground(colorWhite)

	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows[i] = []string{marker, s.Name, s.Kind, s.Size, s.Bounds, s.Opacity}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Layer", "Kind", "Size", "Bounds (row col)", "Opacity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == cursor {
				return selectedStyle
			}
			return normalStyle
		}).
		String()
}
