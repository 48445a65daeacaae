package main

import (
	"context"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docstyle/config"
	"docstyle/docx"
	"docstyle/ooxml"
	"docstyle/state"
	"docstyle/utils/debug"
)

var styleTypes = []string{"paragraph", "character", "table", "numbering"}

type styleRow struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Name    string   `json:"name,omitempty"`
	Default bool     `json:"default,omitempty"`
	BasedOn []string `json:"basedOn,omitempty"`
}

func runStyles(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("styles")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	kind := strings.ToLower(cmd.String("type"))
	if kind != "" && !slices.Contains(styleTypes, kind) {
		log.Warn("Unknown style type", zap.String("type", kind), zap.Strings("did you mean", suggest(kind, styleTypes, 1)))
	}
	return listStyles(env, src, kind, os.Stdout, log)
}

func listStyles(env *state.LocalEnv, src, kind string, out io.Writer, log *zap.Logger) error {
	pkg, err := docx.Open(src, log)
	if err != nil {
		return err
	}
	r := ooxml.NewResolver(pkg.Params(env.Cfg.Resolver.NormalStyleID), log, nil)

	rows := styleRows(r, pkg.Styles, kind)
	log.Debug("Styles listed", zap.Int("count", len(rows)), zap.String("default paragraph", r.DefaultParagraphStyle()))
	return renderStyles(out, env.OutputFormat(), rows)
}

// styleRows lists styles of kind (all when empty) in natural id order.
func styleRows(r *ooxml.Resolver, styles *ooxml.StylesDocument, kind string) []styleRow {
	if styles == nil {
		return nil
	}
	rows := make([]styleRow, 0, len(styles.Styles))
	for id, def := range styles.Styles {
		if kind != "" && def.Type != kind {
			continue
		}
		row := styleRow{ID: id, Type: def.Type, Name: def.Name, Default: def.Default}
		if chain := r.StyleChain(id); len(chain) > 1 {
			row.BasedOn = chain[1:]
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b styleRow) int { return compareNatural(a.ID, b.ID) })
	return rows
}

func renderStyles(w io.Writer, format config.OutputFormat, rows []styleRow) error {
	switch format {
	case config.OutputFormatJson:
		return writeJSON(w, rows)
	case config.OutputFormatTree:
		tw := debug.NewTreeWriter()
		for _, row := range rows {
			tw.Line(0, "%s (%s)", row.ID, row.Type)
			if row.Name != "" {
				tw.Line(1, "name: %q", row.Name)
			}
			if row.Default {
				tw.Line(1, "default")
			}
			for i, id := range row.BasedOn {
				tw.Line(i+1, "<- %s", id)
			}
		}
		_, err := io.WriteString(w, tw.String())
		return err
	default:
		t := newTable(w, table.Row{"ID", "Type", "Name", "Default", "Based on"})
		for _, row := range rows {
			def := ""
			if row.Default {
				def = "yes"
			}
			t.AppendRow(table.Row{row.ID, row.Type, row.Name, def, strings.Join(row.BasedOn, " -> ")})
		}
		t.AppendFooter(table.Row{"", "", "", "total", len(rows)})
		t.Render()
		return nil
	}
}
