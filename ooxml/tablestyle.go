package ooxml

import (
	"strconv"
	"strings"

	"docstyle/property"
)

// TableLook holds w:tblLook flags.
type TableLook struct {
	FirstRow    bool
	LastRow     bool
	FirstColumn bool
	LastColumn  bool
	NoHBand     bool
	NoVBand     bool
}

// w:tblLook/@w:val bitmask (transitional form).
const (
	lookFirstRow    = 0x0020
	lookLastRow     = 0x0040
	lookFirstColumn = 0x0080
	lookLastColumn  = 0x0100
	lookNoHBand     = 0x0200
	lookNoVBand     = 0x0400
)

// TableLookFromObject reads a tblLook object. The hex "val" bitmask is applied
// first, explicit flags override it.
func TableLookFromObject(o property.Object) TableLook {
	var look TableLook
	if o == nil {
		return look
	}
	if s, ok := o.String("val"); ok {
		if mask, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32); err == nil {
			look = TableLook{
				FirstRow:    mask&lookFirstRow != 0,
				LastRow:     mask&lookLastRow != 0,
				FirstColumn: mask&lookFirstColumn != 0,
				LastColumn:  mask&lookLastColumn != 0,
				NoHBand:     mask&lookNoHBand != 0,
				NoVBand:     mask&lookNoVBand != 0,
			}
		}
	}
	flags := []struct {
		key string
		dst *bool
	}{
		{"firstRow", &look.FirstRow},
		{"lastRow", &look.LastRow},
		{"firstColumn", &look.FirstColumn},
		{"lastColumn", &look.LastColumn},
		{"noHBand", &look.NoHBand},
		{"noVBand", &look.NoVBand},
	}
	for _, f := range flags {
		if v, ok := o.Bool(f.key); ok {
			*f.dst = v
		}
	}
	return look
}

// DetermineCellStyleTypes returns conditional formatting types applying to
// the cell at (rowIndex, cellIndex) in ascending priority: whole table, bands,
// edges, corners. Band sizes below 1 are treated as 1.
func DetermineCellStyleTypes(look TableLook, rowIndex, cellIndex, numRows, numCells, rowBandSize, colBandSize int) []TableStyleType {
	if rowBandSize < 1 {
		rowBandSize = 1
	}
	if colBandSize < 1 {
		colBandSize = 1
	}

	types := []TableStyleType{WholeTable}

	if !look.NoHBand {
		group := floorDiv(rowIndex-boolToInt(look.FirstRow), rowBandSize)
		types = append(types, pick(group%2 == 0, Band1Horz, Band2Horz))
	}
	if !look.NoVBand {
		group := floorDiv(cellIndex-boolToInt(look.FirstColumn), colBandSize)
		types = append(types, pick(group%2 == 0, Band1Vert, Band2Vert))
	}

	top := rowIndex == 0
	bottom := numRows > 0 && rowIndex == numRows-1
	left := cellIndex == 0
	right := numCells > 0 && cellIndex == numCells-1

	if look.FirstRow && top {
		types = append(types, FirstRow)
	}
	if look.FirstColumn && left {
		types = append(types, FirstCol)
	}
	if look.LastRow && bottom {
		types = append(types, LastRow)
	}
	if look.LastColumn && right {
		types = append(types, LastCol)
	}

	if top && left && look.FirstRow && look.FirstColumn {
		types = append(types, NwCell)
	}
	if top && right && look.FirstRow && look.LastColumn {
		types = append(types, NeCell)
	}
	if bottom && left && look.LastRow && look.FirstColumn {
		types = append(types, SwCell)
	}
	if bottom && right && look.LastRow && look.LastColumn {
		types = append(types, SeCell)
	}
	return types
}

// ResolveCellStyles returns conditional properties of type pt of the table
// style for the cell described by table, in application order. Absent
// buckets are skipped.
func (r *Resolver) ResolveCellStyles(pt PropertyType, table *TableInfo) []property.Object {
	layers := r.cellLayers(pt, table)
	out := make([]property.Object, 0, len(layers))
	for _, l := range layers {
		out = append(out, property.Clone(l.Props))
	}
	return out
}

func (r *Resolver) cellLayers(pt PropertyType, table *TableInfo) []Layer {
	style := r.tableStyle(table)
	if style == nil || len(style.TableStyleProperties) == 0 {
		return nil
	}

	types := r.cellStyleTypes(style, table)
	out := make([]Layer, 0, len(types))
	for _, tp := range types {
		if props := style.TableStyleProperties[tp].properties(pt); len(props) > 0 {
			out = append(out, Layer{Name: "table " + tp.String(), Props: props})
		}
	}
	return out
}

// CellStyleTypes returns the conditional formatting types selected for the
// cell described by table, or nil when the table has no style.
func (r *Resolver) CellStyleTypes(table *TableInfo) []TableStyleType {
	style := r.tableStyle(table)
	if style == nil {
		return nil
	}
	return r.cellStyleTypes(style, table)
}

func (r *Resolver) cellStyleTypes(style *StyleDefinition, table *TableInfo) []TableStyleType {
	look := r.tableLook(style, table)
	rowBand := firstInt(1, table.TableProperties, style.TableProperties, keyRowBandSize)
	colBand := firstInt(1, table.TableProperties, style.TableProperties, keyColBandSize)
	types := DetermineCellStyleTypes(look, table.RowIndex, table.CellIndex, table.NumRows, table.NumCells, rowBand, colBand)
	r.tracer.TraceCell(style.ID, table.RowIndex, table.CellIndex, types)
	return types
}

// tableStyleProperties returns the properties of type pt defined by the table
// style itself, basedOn chain included.
func (r *Resolver) tableStyleProperties(pt PropertyType, table *TableInfo) property.Object {
	style := r.tableStyle(table)
	if style == nil {
		return nil
	}
	return r.ResolveStyleChain(pt, style.ID, true)
}

func (r *Resolver) tableStyle(table *TableInfo) *StyleDefinition {
	if table == nil {
		return nil
	}
	id, ok := table.TableProperties.String(keyTableStyleID)
	if !ok {
		return nil
	}
	return r.style(id)
}

func (r *Resolver) tableLook(style *StyleDefinition, table *TableInfo) TableLook {
	if o := table.TableProperties.Obj(keyTblLook); o != nil {
		return TableLookFromObject(o)
	}
	return TableLookFromObject(style.TableProperties.Obj(keyTblLook))
}

func firstInt(def int, a, b property.Object, key string) int {
	if v, ok := a.Int(key); ok {
		return v
	}
	if v, ok := b.Int(key); ok {
		return v
	}
	return def
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
