package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed save.schema.json
var saveSchemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func saveSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("save.schema.json", saveSchemaJSON)
	})
	return schema, schemaErr
}

// ValidateJSON checks raw save JSON against the export schema.
func ValidateJSON(data []byte) error {
	s, err := saveSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// WriteFile writes s to path as zstd-compressed JSON.
func WriteFile(path string, s Save) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return fmt.Errorf("zstd write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("zstd close: %w", err)
	}
	return f.Sync()
}

// ReadFile reads an exported save and validates it against the schema before
// decoding.
func ReadFile(path string) (Save, []string, error) {
	data, err := readCompressed(path)
	if err != nil {
		return Empty(), nil, err
	}
	if err := ValidateJSON(data); err != nil {
		return Empty(), nil, err
	}
	return Decode(data)
}

// ReadFileLenient reads an exported save without schema enforcement, relying
// on Decode to repair what it can.
func ReadFileLenient(path string) (Save, []string, error) {
	data, err := readCompressed(path)
	if err != nil {
		return Empty(), nil, err
	}
	return Decode(data)
}

func readCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, dec); err != nil {
		return nil, fmt.Errorf("zstd read: %w", err)
	}
	return buf.Bytes(), nil
}
