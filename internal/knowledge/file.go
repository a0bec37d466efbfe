package knowledge

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a knowledge base override.
type File struct {
	Entries []FileEntry `yaml:"entries"`
}

// FileEntry is one analyte in a knowledge file. Reference accepts report
// style text ("70-99") when Range is not given.
type FileEntry struct {
	Name      string   `yaml:"name"`
	Keys      []string `yaml:"keys,omitempty"`
	Unit      string   `yaml:"unit,omitempty"`
	Category  string   `yaml:"category,omitempty"`
	Range     *Range   `yaml:"range,omitempty"`
	Reference string   `yaml:"reference,omitempty"`
}

// LoadFile reads analyte entries from a YAML knowledge file.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads analyte entries from YAML.
func Decode(r io.Reader) ([]Entry, error) {
	var kf File
	if err := yaml.NewDecoder(r).Decode(&kf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode knowledge file: %w", err)
	}
	out := make([]Entry, 0, len(kf.Entries))
	for i, fe := range kf.Entries {
		e := Entry{Name: fe.Name, Keys: fe.Keys, Unit: fe.Unit, Range: fe.Range}
		if fe.Category != "" {
			c, err := ParseCategory(fe.Category)
			if err != nil {
				return nil, &EntryError{Index: i, Name: fe.Name, Reason: err.Error()}
			}
			e.Category = c
		}
		if e.Range == nil && fe.Reference != "" {
			r, ok := ParseRange(fe.Reference)
			if !ok {
				return nil, &EntryError{Index: i, Name: fe.Name, Reason: fmt.Sprintf("unreadable reference %q", fe.Reference)}
			}
			e.Range = r
		}
		out = append(out, e)
	}
	return out, nil
}

// Export writes the base as a YAML knowledge file.
func Export(w io.Writer, b *Base) error {
	var kf File
	for _, e := range b.Entries() {
		kf.Entries = append(kf.Entries, FileEntry{
			Name:     e.Name,
			Keys:     e.Keys,
			Unit:     e.Unit,
			Category: string(e.Category),
			Range:    e.Range,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(kf); err != nil {
		return fmt.Errorf("encode knowledge file: %w", err)
	}
	return enc.Close()
}
