// Command schema writes the JSON schema of the confdesk config, or with --check reports
// properties missing from or unknown to an existing schema file.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/confdesk/pkg/config"
)

type options struct {
	Output string `short:"o" long:"output" default:"pkg/config/schema.json" description:"schema file"`
	Check  bool   `long:"check" description:"compare the file with the config instead of writing it"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func run(opts options) error {
	schema := config.GenerateSchema()

	if opts.Check {
		data, err := os.ReadFile(opts.Output)
		if err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		var existing jsonschema.Schema
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parse schema %s: %w", opts.Output, err)
		}
		if diff := diffProperties(schema, &existing); len(diff) > 0 {
			return fmt.Errorf("schema %s is stale: %v", opts.Output, diff)
		}
		fmt.Printf("schema %s is up to date\n", opts.Output)
		return nil
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.WriteFile(opts.Output, data, 0o600); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	fmt.Printf("schema generated at %s\n", opts.Output)
	return nil
}

// diffProperties lists properties of every definition present in only one of the schemas,
// as "+def.prop" (missing from existing) and "-def.prop" (unknown to the config)
func diffProperties(generated, existing *jsonschema.Schema) []string {
	props := func(s *jsonschema.Schema) map[string]bool {
		res := map[string]bool{}
		add := func(def string, d *jsonschema.Schema) {
			if d == nil || d.Properties == nil {
				return
			}
			for p := d.Properties.Oldest(); p != nil; p = p.Next() {
				res[def+"."+p.Key] = true
			}
		}
		add("Config", s)
		for name, d := range s.Definitions {
			add(name, d)
		}
		return res
	}
	gen, ex := props(generated), props(existing)

	var diff []string
	for k := range gen {
		if !ex[k] {
			diff = append(diff, "+"+k)
		}
	}
	for k := range ex {
		if !gen[k] {
			diff = append(diff, "-"+k)
		}
	}
	sort.Strings(diff)
	return slices.Compact(diff)
}
