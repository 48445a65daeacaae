// Package docx loads the parts of a DOCX package the style cascade needs:
// the style table, the numbering table and the theme. The document body is
// not parsed.
package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"docstyle/archive"
	"docstyle/ooxml"
)

const (
	partDocument  = "word/document.xml"
	partStyles    = "word/styles.xml"
	partNumbering = "word/numbering.xml"
	themePrefix   = "word/theme/"
)

var (
	// ErrNotDocx is returned when the input is not a zip container with a
	// WordprocessingML main part.
	ErrNotDocx = errors.New("not a DOCX package")
	// ErrPartMissing is returned when a required part is absent.
	ErrPartMissing = errors.New("required package part is missing")
)

// Package is the loaded style related content of a single document.
type Package struct {
	Name      string
	Styles    *ooxml.StylesDocument
	Numbering *ooxml.NumberingDocument
	Theme     *ooxml.Theme
}

// Params returns resolver input for the package.
func (p *Package) Params(normalStyleID string) ooxml.Params {
	return ooxml.Params{
		Styles:        p.Styles,
		Numbering:     p.Numbering,
		Theme:         p.Theme,
		NormalStyleID: normalStyleID,
	}
}

// Open reads and loads the DOCX file at path.
func Open(path string, log *zap.Logger) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}
	pkg, err := Load(data, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	pkg.Name = filepath.Base(path)
	return pkg, nil
}

// Load loads a DOCX package kept in memory. Missing styles, numbering or
// theme parts are not errors: the corresponding fields stay nil and the
// cascade degrades accordingly.
func Load(data []byte, log *zap.Logger) (*Package, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("docx")

	if err := detect(data); err != nil {
		return nil, err
	}
	r, err := archive.Open(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotDocx, err)
	}
	parts, err := archive.ReadParts(r, partDocument, partStyles, partNumbering)
	if err != nil {
		return nil, err
	}
	if _, ok := parts[partDocument]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartMissing, partDocument)
	}

	pkg := &Package{}
	c := &converter{log: log}
	if data, ok := parts[partStyles]; ok {
		root, err := readXML(partStyles, data)
		if err != nil {
			return nil, err
		}
		pkg.Styles = c.styles(root)
	}
	if data, ok := parts[partNumbering]; ok {
		root, err := readXML(partNumbering, data)
		if err != nil {
			return nil, err
		}
		pkg.Numbering = c.numbering(root)
	}
	if pkg.Theme, err = readTheme(r); err != nil {
		return nil, err
	}

	log.Debug("Package loaded",
		zap.Int("styles", styleCount(pkg.Styles)),
		zap.Bool("numbering", pkg.Numbering != nil),
		zap.Bool("theme", pkg.Theme != nil))
	return pkg, nil
}

// readTheme loads the first theme part of the package.
func readTheme(r *zip.Reader) (*ooxml.Theme, error) {
	var theme *ooxml.Theme
	errFound := errors.New("found")
	err := archive.Walk(r, themePrefix, func(f *zip.File) error {
		if filepath.Ext(f.Name) != ".xml" {
			return nil
		}
		data, err := archive.ReadPart(f)
		if err != nil {
			return err
		}
		if theme, err = ooxml.ParseTheme(data); err != nil {
			return err
		}
		return errFound
	})
	if err != nil && !errors.Is(err, errFound) {
		return nil, err
	}
	return theme, nil
}

// detect rejects content which is not a zip container before it is opened.
func detect(data []byte) error {
	kind, err := filetype.Match(data[:min(len(data), 8192)])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotDocx, err)
	}
	switch kind.Extension {
	case "docx", "zip":
		return nil
	}
	if kind == filetype.Unknown {
		return fmt.Errorf("%w: unrecognized content", ErrNotDocx)
	}
	return fmt.Errorf("%w: detected %s", ErrNotDocx, kind.Extension)
}

func styleCount(doc *ooxml.StylesDocument) int {
	if doc == nil {
		return 0
	}
	return len(doc.Styles)
}
