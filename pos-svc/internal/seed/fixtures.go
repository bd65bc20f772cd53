package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed fixtures/*.json
var embedded embed.FS

const (
	menuFile         = "menu.json"
	specialsFile     = "specials.json"
	customersFile    = "customers.json"
	openingHoursFile = "opening-hours.json"
)

// Fixtures returns the bundled fixture documents.
func Fixtures() fs.FS {
	sub, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

type menuRecord struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Ingredients []string `json:"ingredients"`
	Label       string   `json:"label"`
}

type customerRecord struct {
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	ID         string `json:"id"`
	CardDigits string `json:"card_digits"`
	Address    struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		Zip     string `json:"zip"`
		Country string `json:"country"`
	} `json:"address"`
	Special string  `json:"special"`
	Phone   *string `json:"phone"`
}

func (c customerRecord) special() (bool, error) {
	switch {
	case strings.EqualFold(c.Special, "true"):
		return true, nil
	case strings.EqualFold(c.Special, "false"):
		return false, nil
	}
	return false, fmt.Errorf("customer %s: special must be \"true\" or \"false\", got %q", c.ID, c.Special)
}

type openingHoursRecord struct {
	Day    string  `json:"day"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
	Status string  `json:"status"`
}

// group is one key of a fixture object together with its records.
type group[T any] struct {
	Key   string
	Items []T
}

// readGroups decodes a JSON object of arrays keeping the document's key order.
func readGroups[T any](fsys fs.FS, name string) ([]group[T], error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var groups []group[T]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		key, _ := tok.(string)

		var items []T
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("%s: key %q: %w", name, key, err)
		}
		groups = append(groups, group[T]{Key: key, Items: items})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return groups, nil
}

func readList[T any](fsys fs.FS, name string) ([]T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
