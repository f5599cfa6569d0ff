package document

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/hack-pad/hackpadfs"
)

// Encode renders the document as indented JSON.
func Encode(d Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// Decode parses a document from JSON. Malformed input returns an error and
// no document: the load boundary is all-or-nothing, so callers keep their
// current state on failure.
func Decode(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}
	return d, nil
}

// Save encodes d and writes it to name on fsys, creating parent directories
// as needed. fsys is any hackpadfs filesystem: the OS one in the editor, an
// in-memory one in tests.
func Save(fsys hackpadfs.FS, name string, d Document) error {
	data, err := Encode(d)
	if err != nil {
		return err
	}
	if dir := path.Dir(name); dir != "." && dir != "/" {
		if err := hackpadfs.MkdirAll(fsys, dir, 0755); err != nil {
			return fmt.Errorf("save document %q: %w", name, err)
		}
	}
	f, err := hackpadfs.OpenFile(fsys, name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("save document %q: %w", name, err)
	}
	defer f.Close()
	if _, err := hackpadfs.WriteFile(f, data); err != nil {
		return fmt.Errorf("save document %q: %w", name, err)
	}
	return nil
}

// Load reads and decodes the document at name on fsys.
func Load(fsys hackpadfs.FS, name string) (Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("load document %q: %w", name, err)
	}
	return Decode(data)
}
