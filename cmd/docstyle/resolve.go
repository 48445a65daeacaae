package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docstyle/docx"
	"docstyle/ooxml"
	"docstyle/property"
	"docstyle/state"
)

// resolveQuery describes the paragraph and run to resolve.
type resolveQuery struct {
	Paragraph  property.Object
	Run        property.Object
	Table      *ooxml.TableInfo
	ListMarker bool
}

// resolveResult is what resolve prints.
type resolveResult struct {
	Paragraph  property.Object  `json:"paragraph"`
	Run        property.Object  `json:"run"`
	FontFamily string           `json:"fontFamily,omitempty"`
	Color      string           `json:"color,omitempty"`
	ListLevel  *ooxml.ListLevel `json:"listLevel,omitempty"`
	Marker     string           `json:"marker,omitempty"`
	CellStyles []string         `json:"cellStyles,omitempty"`

	ParagraphLayers []ooxml.Layer `json:"-"`
	RunLayers       []ooxml.Layer `json:"-"`
}

func runResolve(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("resolve")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	q, err := queryFromFlags(cmd, log)
	if err != nil {
		return err
	}

	log.Debug("Processing starting", zap.String("source", src))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return resolveDocument(env, src, q, os.Stdout, log)
}

// queryFromFlags builds the query from command line. Direct formatting XML
// is parsed first, explicit flags override it.
func queryFromFlags(cmd *cli.Command, log *zap.Logger) (resolveQuery, error) {
	var (
		q   resolveQuery
		err error
	)
	if q.Paragraph, err = fragmentFlag(cmd, "ppr", docx.ParseParagraphProperties, log); err != nil {
		return q, err
	}
	if q.Run, err = fragmentFlag(cmd, "rpr", docx.ParseRunProperties, log); err != nil {
		return q, err
	}
	if id := cmd.String("style"); id != "" {
		q.Paragraph["styleId"] = id
	}
	if id := cmd.String("run-style"); id != "" {
		q.Run["styleId"] = id
	}
	if cmd.IsSet("num-id") {
		q.Paragraph["numberingProperties"] = property.Object{
			"numId": cmd.Int("num-id"),
			"ilvl":  cmd.Int("ilvl"),
		}
	}
	q.ListMarker = cmd.Bool("list-marker")

	if cmd.IsSet("table-style") || cmd.IsSet("tblpr") {
		tbl, err := fragmentFlag(cmd, "tblpr", docx.ParseTableProperties, log)
		if err != nil {
			return q, err
		}
		if id := cmd.String("table-style"); id != "" {
			tbl["tableStyleId"] = id
		}
		q.Table = &ooxml.TableInfo{
			TableProperties: tbl,
			RowIndex:        cmd.Int("row"),
			CellIndex:       cmd.Int("col"),
			NumRows:         max(cmd.Int("rows"), cmd.Int("row")+1),
			NumCells:        max(cmd.Int("cols"), cmd.Int("col")+1),
		}
	}
	return q, nil
}

func fragmentFlag(cmd *cli.Command, name string, parse func([]byte, *zap.Logger) (property.Object, error), log *zap.Logger) (property.Object, error) {
	data := cmd.String(name)
	if data == "" {
		return property.Object{}, nil
	}
	o, err := parse([]byte(data), log)
	if err != nil {
		return nil, fmt.Errorf("bad --%s value: %w", name, err)
	}
	if o == nil {
		o = property.Object{}
	}
	return o, nil
}

// resolveDocument loads the package at src, resolves q and writes the result
// to out in the requested format.
func resolveDocument(env *state.LocalEnv, src string, q resolveQuery, out io.Writer, log *zap.Logger) error {
	pkg, err := docx.Open(src, log)
	if err != nil {
		return err
	}
	if err := env.Rpt.StoreCopy(reportName("source", src), src); err != nil {
		log.Warn("Unable to store source in the report", zap.Error(err))
	}

	tracer, err := env.Tracer(src)
	if err != nil {
		return err
	}
	defer func() {
		if name := tracer.Flush(); name != "" {
			log.Debug("Cascade trace written", zap.String("file", name))
		}
	}()

	r := ooxml.NewResolver(pkg.Params(env.Cfg.Resolver.NormalStyleID), log, tracer)
	warnUnknownStyles(pkg.Styles, q, log)

	res := resolve(r, q, env.Cfg.Resolver.FontFallback)
	return render(out, env.OutputFormat(), res)
}

// resolve computes everything resolveResult holds.
func resolve(r *ooxml.Resolver, q resolveQuery, fontFallback string) resolveResult {
	var res resolveResult

	res.Paragraph, res.ParagraphLayers = r.ExplainParagraph(q.Paragraph, q.Table)
	res.Run, res.RunLayers = r.ExplainRun(q.Run, ooxml.RunContext{
		Paragraph:              res.Paragraph,
		Table:                  q.Table,
		IsListNumber:           q.ListMarker,
		NumberingDefinedInline: ooxml.NumberingDefinedInline(res.ParagraphLayers),
	})

	res.FontFamily, _ = r.ResolveFontFamily(res.Run, func(name string) string {
		return ooxml.CSSFontFamilyWithFallback(name, fontFallback)
	})
	res.Color = r.EffectiveColor(res.Run.Obj("color"))

	numbering := res.Paragraph.Obj("numberingProperties")
	if numID, ok := numbering.Int("numId"); ok && numID != 0 {
		ilvl, _ := numbering.Int("ilvl")
		if level, ok := r.ResolveListLevel(numID, ilvl); ok {
			res.ListLevel = &level
			res.Marker = listMarker(r, level)
		}
	}

	if q.Table != nil {
		for _, t := range r.CellStyleTypes(q.Table) {
			res.CellStyles = append(res.CellStyles, t.String())
		}
	}
	return res
}

// listMarker renders the marker of the first item at level, every outer
// level counted at its start value.
func listMarker(r *ooxml.Resolver, level ooxml.ListLevel) string {
	levels := func(i int) ooxml.ListLevel {
		l, _ := r.ResolveListLevel(level.NumID, i)
		return l
	}
	counters := make([]int, level.Ilvl+1)
	for i := range counters {
		counters[i] = levels(i).Start
	}
	counters[level.Ilvl] = level.Start
	return ooxml.FormatListMarker(level, counters, levels)
}

func warnUnknownStyles(styles *ooxml.StylesDocument, q resolveQuery, log *zap.Logger) {
	if styles == nil {
		return
	}
	ids := make([]string, 0, len(styles.Styles))
	for id := range styles.Styles {
		ids = append(ids, id)
	}
	check := func(kind string, o property.Object, key string) {
		id, _ := o.String(key)
		if id == "" || styles.Style(id) != nil {
			return
		}
		log.Warn("Unknown style", zap.String("kind", kind), zap.String("id", id), zap.Strings("did you mean", suggest(id, ids, 3)))
	}
	check("paragraph", q.Paragraph, "styleId")
	check("character", q.Run, "styleId")
	if q.Table != nil {
		check("table", q.Table.TableProperties, "tableStyleId")
	}
}

// reportName gives a stable report entry name for a file.
func reportName(dir, path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return dir + "/" + slug.Make(base[:len(base)-len(ext)]) + ext
}
