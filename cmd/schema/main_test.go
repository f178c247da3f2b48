package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WriteAndCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, run(options{Output: out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"signing_key"`)
	assert.Contains(t, string(data), `"overdue_check_interval"`)

	require.NoError(t, run(options{Output: out, Check: true}))

	// rename a property to make the file stale
	stale := strings.Replace(string(data), `"signing_key"`, `"signing_secret"`, 1)
	require.NoError(t, os.WriteFile(out, []byte(stale), 0o600))
	err = run(options{Output: out, Check: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "+StorageConfig.signing_key")
	assert.Contains(t, err.Error(), "-StorageConfig.signing_secret")
}

func TestRun_CheckMissingFile(t *testing.T) {
	err := run(options{Output: filepath.Join(t.TempDir(), "nope.json"), Check: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read schema")
}

func TestDiffProperties(t *testing.T) {
	schema := func(defs map[string][]string) *jsonschema.Schema {
		s := &jsonschema.Schema{Definitions: jsonschema.Definitions{}}
		for name, props := range defs {
			d := &jsonschema.Schema{Properties: jsonschema.NewProperties()}
			for _, p := range props {
				d.Properties.Set(p, &jsonschema.Schema{Type: "string"})
			}
			s.Definitions[name] = d
		}
		return s
	}

	gen := schema(map[string][]string{"Config": {"server", "auth"}, "AuthConfig": {"organizers"}})
	assert.Empty(t, diffProperties(gen, gen))

	existing := schema(map[string][]string{"Config": {"server", "feeds"}, "AuthConfig": {"organizers"}})
	assert.Equal(t, []string{"+Config.auth", "-Config.feeds"}, diffProperties(gen, existing))
}
