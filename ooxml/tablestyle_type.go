package ooxml

//go:generate go run github.com/abice/go-enum@v0.9.2 --marshal --names --noprefix

// TableStyleType names a conditional formatting bucket of a table style
// (w:tblStylePr/@w:type).
// ENUM(wholeTable, band1Horz, band2Horz, band1Vert, band2Vert, firstRow, firstCol, lastRow, lastCol, nwCell, neCell, swCell, seCell)
type TableStyleType int
