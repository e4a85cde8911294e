package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/replit/iotable/internal/table"
	"gopkg.in/yaml.v2"
)

// DecodeTOML reads a table document written in TOML.
func DecodeTOML(r io.Reader) (Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return Document{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Document{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return doc, nil
}

// DecodeYAML reads a table document written in YAML.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, errors.New("empty document")
		}
		return Document{}, err
	}
	return doc, nil
}

// DecodeJSON reads a table document written in JSON.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, errors.New("empty document")
		}
		return Document{}, err
	}
	return doc, nil
}

// decoders maps file extensions to document decoders.
var decoders = map[string]func(io.Reader) (Document, error){
	".toml": DecodeTOML,
	".yaml": DecodeYAML,
	".yml":  DecodeYAML,
	".json": DecodeJSON,
}

// Extensions returns the file extensions LoadFile understands.
func Extensions() []string {
	return []string{".toml", ".yaml", ".yml", ".json", ".html", ".htm"}
}

// LoadFile builds a table from a file, choosing the format by its
// extension.
func LoadFile(filename string) (table.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	f, err := os.Open(filename)
	if err != nil {
		return table.Table{}, err
	}
	defer f.Close()

	if ext == ".html" || ext == ".htm" {
		t, err := ParseHTML(f)
		if err != nil {
			return table.Table{}, fmt.Errorf("%s: %w", filename, err)
		}
		return t, nil
	}

	decode, ok := decoders[ext]
	if !ok {
		return table.Table{}, fmt.Errorf(
			"%s: unknown file type %q (must be one of %s)",
			filename, ext, strings.Join(Extensions(), ", "),
		)
	}
	doc, err := decode(f)
	if err != nil {
		return table.Table{}, fmt.Errorf("%s: %w", filename, err)
	}
	t, err := Build(doc)
	if err != nil {
		return table.Table{}, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}
