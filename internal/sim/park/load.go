package park

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed state.schema.json
var stateSchemaJSON []byte

const stateSchemaURL = "state.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func stateSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(stateSchemaURL, bytes.NewReader(stateSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile(stateSchemaURL)
	})
	return schema, schemaErr
}

// New returns an empty state with every sprite list present and empty.
func New() *State {
	s := &State{}
	s.ensureLists()
	return s
}

func (s *State) ensureLists() {
	for len(s.Lists) < NumLists {
		s.Lists = append(s.Lists, SpriteList{Head: NoEntity})
	}
}

// Decode validates a JSON state document and decodes it.
func Decode(data []byte) (*State, error) {
	sch, err := stateSchema()
	if err != nil {
		return nil, fmt.Errorf("compile state schema: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate state: %w", err)
	}
	s := &State{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	s.ensureLists()
	return s, nil
}

// LoadFile reads and decodes a state document from path.
func LoadFile(path string) (*State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}
