// Package mcp defines the canonical MCP server configuration used by the
// store, the editor surface, and the agent adapters. Raw JSON is normalized
// into a fully-populated record on load and stripped back to a minimal form
// on save, so callers never see missing fields and persisted files never
// carry defaults.
package mcp

import (
	"encoding/json"

	"agentdeck/internal/errors"
)

// Transport type constants for MCP server communication.
const (
	// TypeStdio indicates a local process spoken to over stdin/stdout.
	// This is the default when a command is present.
	TypeStdio = "stdio"

	// TypeHTTP indicates a remote streamable-HTTP server.
	// This is the default when a URL is present and no command is.
	TypeHTTP = "http"

	// TypeSSE indicates a remote server using the legacy SSE transport.
	TypeSSE = "sse"
)

// OAuth holds the optional OAuth client settings of a remote server.
type OAuth struct {
	ClientID     string `json:"clientId,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
	Scope        string `json:"scope,omitempty"`
	CallbackPort int    `json:"callbackPort,omitempty"`
}

// IsZero reports whether no OAuth sub-field is set.
func (o OAuth) IsZero() bool {
	return o == OAuth{}
}

// ServerConfig is the canonical, normalized MCP server record. After
// Normalize, Type is always set and Args, Env, and Headers are non-nil, so
// the editor never reads a missing field.
type ServerConfig struct {
	// Name is the storage key. It is not serialized into the config body;
	// the store keys files by it.
	Name string `json:"-"`

	// Type is the transport: stdio, http, or sse.
	Type string

	// Command, Args, Env, and Cwd describe a local (stdio) server process.
	Command string
	Args    []string
	Env     map[string]string
	Cwd     string

	// URL, Headers, and OAuth describe a remote (http/sse) server.
	URL     string
	Headers map[string]string
	OAuth   OAuth

	// Enabled gates whether adapters sync this server. Defaults to true.
	Enabled bool

	// Timeout is the request timeout in seconds. Zero means the agent's
	// default.
	Timeout int

	// unknown preserves JSON fields this version does not model, so a
	// save never drops what a newer tool wrote.
	unknown map[string]json.RawMessage
}

// Remote reports whether the server uses a remote transport.
func (s *ServerConfig) Remote() bool {
	return s.Type == TypeHTTP || s.Type == TypeSSE
}

// Normalize fills defaults in place: the transport type is inferred from the
// populated endpoint fields, and every slice and map the editor reads is
// made non-nil.
func (s *ServerConfig) Normalize() {
	if s.Type == "" {
		if s.URL != "" && s.Command == "" {
			s.Type = TypeHTTP
		} else {
			s.Type = TypeStdio
		}
	}
	if s.Args == nil {
		s.Args = []string{}
	}
	if s.Env == nil {
		s.Env = map[string]string{}
	}
	if s.Headers == nil {
		s.Headers = map[string]string{}
	}
}

// Clean returns the minimal persisted form: defaults stripped, empty
// collections omitted, enabled omitted unless false, oauth omitted unless a
// sub-field is set. Unknown fields from the source document are carried
// through. Normalize(Clean(x)) reproduces x for every editor-visible field.
func (s *ServerConfig) Clean() map[string]any {
	out := make(map[string]any, len(s.unknown)+8)
	for k, v := range s.unknown {
		var val any
		if err := json.Unmarshal(v, &val); err == nil {
			out[k] = val
		}
	}

	if s.Type != "" {
		out["type"] = s.Type
	}
	if s.Command != "" {
		out["command"] = s.Command
	}
	if len(s.Args) > 0 {
		out["args"] = s.Args
	}
	if len(s.Env) > 0 {
		out["env"] = s.Env
	}
	if s.Cwd != "" {
		out["cwd"] = s.Cwd
	}
	if s.URL != "" {
		out["url"] = s.URL
	}
	if len(s.Headers) > 0 {
		out["headers"] = s.Headers
	}
	if !s.OAuth.IsZero() {
		out["oauth"] = s.OAuth
	}
	if !s.Enabled {
		out["enabled"] = false
	}
	if s.Timeout > 0 {
		out["timeout"] = s.Timeout
	}
	return out
}

// MarshalJSON persists the cleaned form.
func (s *ServerConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Clean())
}

// UnmarshalJSON loads raw JSON, captures unknown fields, and normalizes.
func (s *ServerConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "parsing MCP server config")
	}

	take := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		delete(raw, key)
		return errors.Wrapf(json.Unmarshal(v, dst), "parsing field %q", key)
	}

	// Absent means enabled.
	s.Enabled = true

	for key, dst := range map[string]any{
		"type":    &s.Type,
		"command": &s.Command,
		"args":    &s.Args,
		"env":     &s.Env,
		"cwd":     &s.Cwd,
		"url":     &s.URL,
		"headers": &s.Headers,
		"oauth":   &s.OAuth,
		"enabled": &s.Enabled,
		"timeout": &s.Timeout,
	} {
		if err := take(key, dst); err != nil {
			return err
		}
	}

	if len(raw) > 0 {
		s.unknown = raw
	} else {
		s.unknown = nil
	}

	s.Normalize()
	return nil
}

// Decode parses a raw config document into a normalized record with the
// given storage name.
func Decode(name string, data []byte) (*ServerConfig, error) {
	var s ServerConfig
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.Name = name
	return &s, nil
}

// New returns a normalized empty config, the draft a create flow starts
// from.
func New(name string) *ServerConfig {
	s := &ServerConfig{Name: name, Enabled: true}
	s.Normalize()
	return s
}
