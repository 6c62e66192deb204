package service

import (
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix recognized for environment-variable configuration
// overlays, e.g. GOMDLINT_MD013__LINE_LENGTH=100 or GOMDLINT_DEFAULT=warn.
const envPrefix = "GOMDLINT_"

// LoadTOMLConfig reads a .gomdlint.toml file and overlays any GOMDLINT_-
// prefixed environment variables on top of it, returning a plain
// map[string]interface{} in the same shape ConfigResolver.Resolve expects.
// Double underscores in an env var name (GOMDLINT_MD013__LINE_LENGTH) mark
// a nesting boundary, so a rule's settings can be overridden individually.
func LoadTOMLConfig(path string) (map[string]interface{}, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, interface{}) {
			trimmed := strings.TrimPrefix(key, envPrefix)
			parts := strings.Split(trimmed, "__")
			for i, p := range parts {
				parts[i] = strings.ToLower(p)
			}
			return strings.Join(parts, "."), value
		},
	}), nil); err != nil {
		return nil, err
	}

	return k.Raw(), nil
}
