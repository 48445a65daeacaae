package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/maruel/natural"

	"docstyle/config"
	"docstyle/property"
	"docstyle/utils/debug"
)

// render writes resolve results to w.
func render(w io.Writer, format config.OutputFormat, res resolveResult) error {
	switch format {
	case config.OutputFormatJson:
		return writeJSON(w, res)
	case config.OutputFormatTree:
		return writeTree(w, res)
	default:
		return writeTable(w, res)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func writeTable(w io.Writer, res resolveResult) error {
	t := newTable(w, table.Row{"Scope", "Property", "Value"})

	for _, kv := range flatten("", res.Paragraph) {
		t.AppendRow(table.Row{"paragraph", kv[0], kv[1]})
	}
	t.AppendSeparator()
	for _, kv := range flatten("", res.Run) {
		t.AppendRow(table.Row{"run", kv[0], kv[1]})
	}
	t.AppendSeparator()
	if res.FontFamily != "" {
		t.AppendRow(table.Row{"computed", "font-family", res.FontFamily})
	}
	if res.Color != "" {
		t.AppendRow(table.Row{"computed", "color", res.Color})
	}
	if res.ListLevel != nil {
		t.AppendRow(table.Row{"list", "numFmt", res.ListLevel.NumFmt})
		t.AppendRow(table.Row{"list", "lvlText", res.ListLevel.LvlText})
		t.AppendRow(table.Row{"list", "marker", res.Marker})
	}
	if len(res.CellStyles) > 0 {
		t.AppendRow(table.Row{"table", "cell styles", strings.Join(res.CellStyles, ", ")})
	}
	t.Render()
	return nil
}

func writeTree(w io.Writer, res resolveResult) error {
	tw := debug.NewTreeWriter()

	tw.Line(0, "paragraph")
	for _, l := range res.ParagraphLayers {
		tw.Object(1, l.Name, l.Props)
	}
	tw.Object(1, "=> resolved", res.Paragraph)

	tw.Line(0, "run")
	for _, l := range res.RunLayers {
		tw.Object(1, l.Name, l.Props)
	}
	tw.Object(1, "=> resolved", res.Run)

	if res.FontFamily != "" {
		tw.Line(0, "font-family: %s", res.FontFamily)
	}
	if res.Color != "" {
		tw.Line(0, "color: %s", res.Color)
	}
	if res.ListLevel != nil {
		tw.Line(0, "list: numId=%d ilvl=%d %s %q => %q", res.ListLevel.NumID, res.ListLevel.Ilvl, res.ListLevel.NumFmt, res.ListLevel.LvlText, res.Marker)
	}
	if len(res.CellStyles) > 0 {
		tw.Line(0, "cell styles: %s", strings.Join(res.CellStyles, ", "))
	}
	_, err := io.WriteString(w, tw.String())
	return err
}

// flatten lists leaf values of o with dotted keys in natural key order.
func flatten(prefix string, o property.Object) [][2]string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareNatural)

	var out [][2]string
	for _, k := range keys {
		out = append(out, flattenValue(prefix+k, o[k])...)
	}
	return out
}

func flattenValue(key string, v any) [][2]string {
	switch v := v.(type) {
	case property.Object:
		return flatten(key+".", v)
	case map[string]any:
		return flatten(key+".", property.Object(v))
	case []any:
		var out [][2]string
		for i, e := range v {
			out = append(out, flattenValue(key+"["+strconv.Itoa(i)+"]", e)...)
		}
		return out
	case nil:
		return [][2]string{{key, "null"}}
	default:
		return [][2]string{{key, fmt.Sprint(v)}}
	}
}

func compareNatural(a, b string) int {
	switch {
	case a == b:
		return 0
	case natural.Less(a, b):
		return -1
	default:
		return 1
	}
}
