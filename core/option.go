package core

import "strconv"

// OptionValue is the value side of a SetOption command. Concrete value types
// implement the unexported isOptionValue marker enabling a closed set; each
// knows its own wire rendering.
type OptionValue interface {
	isOptionValue()
	// Wire returns the textual form used on the wire.
	Wire() string
}

// StringValue is a free-form string option value.
type StringValue struct{ Value string }

// isOptionValue implements the OptionValue interface for StringValue.
func (StringValue) isOptionValue() {}

// Wire returns the textual form used on the wire.
func (v StringValue) Wire() string { return v.Value }

// IntValue is an integer option value (spin options).
type IntValue struct{ Value int }

// isOptionValue implements the OptionValue interface for IntValue.
func (IntValue) isOptionValue() {}

// Wire returns the textual form used on the wire.
func (v IntValue) Wire() string { return strconv.Itoa(v.Value) }

// FloatValue is a floating point option value.
type FloatValue struct{ Value float64 }

// isOptionValue implements the OptionValue interface for FloatValue.
func (FloatValue) isOptionValue() {}

// Wire returns the textual form used on the wire.
func (v FloatValue) Wire() string { return strconv.FormatFloat(v.Value, 'f', -1, 64) }

// BoolValue is a boolean option value (check options).
type BoolValue struct{ Value bool }

// isOptionValue implements the OptionValue interface for BoolValue.
func (BoolValue) isOptionValue() {}

// Wire returns the textual form used on the wire.
func (v BoolValue) Wire() string { return strconv.FormatBool(v.Value) }

// OptionType categorizes a configuration option an engine announces during
// the handshake.
type OptionType int

const (
	// OptionTypeCheck is a boolean toggle.
	OptionTypeCheck OptionType = iota
	// OptionTypeSpin is a bounded integer.
	OptionTypeSpin
	// OptionTypeCombo is an enumerated choice.
	OptionTypeCombo
	// OptionTypeButton triggers an action and carries no value.
	OptionTypeButton
	// OptionTypeString is free-form text.
	OptionTypeString
)

// String returns the wire keyword for the option type.
func (t OptionType) String() string {
	switch t {
	case OptionTypeCheck:
		return "check"
	case OptionTypeSpin:
		return "spin"
	case OptionTypeCombo:
		return "combo"
	case OptionTypeButton:
		return "button"
	case OptionTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// OptionDefinition describes one configuration option announced by an
// engine: its type, default and, depending on the type, numeric bounds or
// enumerated choices.
type OptionDefinition struct {
	Type    OptionType
	Default string   // Default value as announced (textual)
	Min     *int     // Lower bound for spin options
	Max     *int     // Upper bound for spin options
	Vars    []string // Enumerated choices for combo options
}
