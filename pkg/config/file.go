// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📦 FileDefaults are optional run defaults loaded from a .resub.yaml or
// .resub.hcl file. Explicit CLI values always win.
type FileDefaults struct {
	Extensions []string `yaml:"extensions,omitempty" hcl:"extensions,optional"`
	Ignore     []string `yaml:"ignore,omitempty" hcl:"ignore,optional"`
	Verbose    bool     `yaml:"verbose,omitempty" hcl:"verbose,optional"`
	Force      bool     `yaml:"force,omitempty" hcl:"force,optional"`
}

// 🔌 Parser is the interface for defaults-file parsers
type Parser interface {
	// 📝 Parse parses the defaults from bytes
	Parse(ctx context.Context, data []byte) (*FileDefaults, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎯 LoadDefaults loads run defaults from a file
func LoadDefaults(ctx context.Context, path string) (*FileDefaults, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading defaults file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading defaults file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	defaults, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing defaults file: %w", err)
	}

	return defaults, nil
}

// 🔀 ApplyDefaults fills unset option fields from file defaults. List fields
// are only taken when the CLI gave none; boolean flags are OR'd.
func (o *Options) ApplyDefaults(d *FileDefaults) {
	if d == nil {
		return
	}
	if len(o.Extensions) == 0 {
		o.Extensions = d.Extensions
	}
	if len(o.IgnoreGlobs) == 0 {
		o.IgnoreGlobs = d.Ignore
	}
	o.Verbose = o.Verbose || d.Verbose
	o.Force = o.Force || d.Force
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*FileDefaults, error) {
	var defaults FileDefaults
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&defaults); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &defaults, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*FileDefaults, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "defaults.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var defaults FileDefaults
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &defaults)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &defaults, nil
}
