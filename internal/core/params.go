package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
	ParamTypeBool  ParamType = "bool"
)

// Parameter is one labelled value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters under a heading.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current values exposed by a controller.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter and its step and bounds.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64
	Min  float64
	Max  float64
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
