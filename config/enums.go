package config

//go:generate go run github.com/abice/go-enum@v0.9.2 --marshal --names

// Text measurement used to size snapshot elements which have no explicit
// width.
// ENUM(font, proportional)
type MeasureMode int

// Presentation of resolved properties.
// ENUM(table, json, tree)
type OutputFormat int
