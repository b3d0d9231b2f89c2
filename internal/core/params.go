package core

import (
	"fmt"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value shown on the HUD or in a dump.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current settings of a running view.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by components that expose their settings.
type ParameterProvider interface {
	Parameters() ParameterGroup
}

// IntParam formats an integer parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: fmt.Sprintf("%d", v)}
}

// FloatParam formats a floating-point parameter with two decimals.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: fmt.Sprintf("%.2f", v)}
}

// BoolParam formats a boolean parameter.
func BoolParam(key, label string, v bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: fmt.Sprintf("%t", v)}
}

// Snapshot collects the groups of all providers in order.
func Snapshot(providers ...ParameterProvider) ParameterSnapshot {
	var s ParameterSnapshot
	for _, p := range providers {
		if p == nil {
			continue
		}
		s.Groups = append(s.Groups, p.Parameters())
	}
	return s
}

// Lines renders the snapshot as "group: label=value ..." lines.
func (s ParameterSnapshot) Lines() []string {
	lines := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		var b strings.Builder
		b.WriteString(g.Name)
		b.WriteString(":")
		for _, p := range g.Params {
			fmt.Fprintf(&b, " %s=%s", p.Label, p.Value)
		}
		lines = append(lines, b.String())
	}
	return lines
}
