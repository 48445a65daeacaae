package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docstyle/config"
	"docstyle/layoutbridge"
	"docstyle/layoutbridge/htmldom"
	"docstyle/state"
	"docstyle/utils/debug"
)

type hitResult struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Found     bool    `json:"found"`
	Pos       int     `json:"pos,omitempty"`
	PageIndex int     `json:"pageIndex,omitempty"`
	BlockID   string  `json:"blockId,omitempty"`
	Text      string  `json:"text,omitempty"`
}

func runHit(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("hit")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	return hitSnapshot(env, src, cmd.Float("x"), cmd.Float("y"), os.Stdout, log)
}

// newMeasurer returns text measurement selected by configuration and a
// function releasing it.
func newMeasurer(conf config.LayoutConfig) (layoutbridge.Measurer, func() error, error) {
	if conf.Measure == config.MeasureModeProportional {
		return layoutbridge.ProportionalMeasurer{}, func() error { return nil }, nil
	}
	m, err := htmldom.NewFontMeasurer(conf.DefaultFontSize)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to prepare font measurer: %w", err)
	}
	return m, m.Close, nil
}

func hitSnapshot(env *state.LocalEnv, src string, x, y float64, out io.Writer, log *zap.Logger) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open snapshot: %w", err)
	}
	defer f.Close()

	if err := env.Rpt.StoreCopy(reportName("snapshot", src), src); err != nil {
		log.Warn("Unable to store snapshot in the report", zap.Error(err))
	}

	measurer, release, err := newMeasurer(env.Cfg.Layout)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(); err != nil {
			log.Debug("Unable to release measurer", zap.Error(err))
		}
	}()

	doc, err := htmldom.Parse(f,
		htmldom.WithLogger(log),
		htmldom.WithMeasurer(measurer),
		htmldom.WithFontSize(env.Cfg.Layout.DefaultFontSize),
		htmldom.WithLineHeight(env.Cfg.Layout.LineHeight),
		htmldom.WithViewportWidth(env.Cfg.Layout.ViewportWidth),
	)
	if err != nil {
		return err
	}

	res := locate(layoutbridge.NewMapper(log, layoutbridge.WithMeasurer(measurer)), doc, x, y)
	if !res.Found {
		log.Info("No document position at point", zap.Float64("x", x), zap.Float64("y", y))
	}
	return renderHit(out, env.OutputFormat(), res)
}

func locate(m *layoutbridge.Mapper, doc *htmldom.Document, x, y float64) hitResult {
	res := hitResult{X: x, Y: y}
	h, ok := m.Locate(doc.Container(), x, y)
	if !ok {
		return res
	}
	res.Found = true
	res.Pos = h.Pos
	res.PageIndex = h.PageIndex
	res.BlockID = h.BlockID
	if h.Target != nil {
		res.Text = h.Target.Text()
	}
	return res
}

func renderHit(w io.Writer, format config.OutputFormat, res hitResult) error {
	switch format {
	case config.OutputFormatJson:
		return writeJSON(w, res)
	case config.OutputFormatTree:
		tw := debug.NewTreeWriter()
		tw.Line(0, "point (%g, %g)", res.X, res.Y)
		if !res.Found {
			tw.Line(1, "no position")
		} else {
			tw.Line(1, "pos: %d", res.Pos)
			tw.Line(1, "page: %d", res.PageIndex)
			if res.BlockID != "" {
				tw.Line(1, "block: %s", res.BlockID)
			}
			if res.Text != "" {
				tw.TextBlock(1, "text", res.Text)
			}
		}
		_, err := io.WriteString(w, tw.String())
		return err
	default:
		t := newTable(w, table.Row{"X", "Y", "Position", "Page", "Block", "Text"})
		if res.Found {
			t.AppendRow(table.Row{res.X, res.Y, res.Pos, res.PageIndex, res.BlockID, res.Text})
		} else {
			t.AppendRow(table.Row{res.X, res.Y, "none", "", "", ""})
		}
		t.Render()
		return nil
	}
}
