package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// schemaDirective lets taplo-based editors validate the file against the
// schema written next to it.
const schemaDirective = "#:schema ./" + schemaFileName + "\n\n"

// EncodeTOML renders cfg as TOML with sections in struct order.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfig writes cfg as TOML, headed by the schema directive.
func WriteConfig(cfg *Config, path string) error {
	body, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(schemaDirective)
	buf.Write(body)

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
