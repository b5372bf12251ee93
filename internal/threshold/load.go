package threshold

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/thresholds.yaml
var defaultThresholds []byte

type fileFormat struct {
	Thresholds []fileEntry `yaml:"thresholds"`
}

type fileEntry struct {
	Name  string `yaml:"name"`
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Value string `yaml:"value"`
}

// Load parses a YAML threshold document.
func Load(r io.Reader) (*Table, error) {
	var doc fileFormat
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode thresholds: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Thresholds))
	for i, fe := range doc.Thresholds {
		from, err := time.Parse(DateLayout, fe.From)
		if err != nil {
			return nil, fmt.Errorf("threshold %d (%s): invalid from date %q: %w", i, fe.Name, fe.From, err)
		}
		var to time.Time
		if fe.To != "" {
			to, err = time.Parse(DateLayout, fe.To)
			if err != nil {
				return nil, fmt.Errorf("threshold %d (%s): invalid to date %q: %w", i, fe.Name, fe.To, err)
			}
		}
		value, err := decimal.NewFromString(fe.Value)
		if err != nil {
			return nil, fmt.Errorf("threshold %d (%s): invalid value %q: %w", i, fe.Name, fe.Value, err)
		}
		entries = append(entries, Entry{Name: fe.Name, From: from, To: to, Value: value})
	}

	return New(entries)
}

// LoadFile reads a YAML threshold file from disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open thresholds file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the threshold table compiled into the binary.
func Default() (*Table, error) {
	return Load(bytes.NewReader(defaultThresholds))
}
