package scene

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// PropertyValue is the tagged sum type carried by every Instance property.
// Concrete variants are String, Bool, Number, Vector3, CFrame, Color3,
// UDim2, and Enum. The wire encoding is untagged — the JSON shape alone
// distinguishes the variant, per the canonical JSON contract — but the
// in-memory representation here is a plain Go interface, not a parsed
// shape guess.
type PropertyValue interface {
	propertyValue()
	// Equal reports structural equality. Used by the diff engine instead
	// of reflect.DeepEqual so float comparisons stay explicit.
	Equal(other PropertyValue) bool
	// String renders a debug form used by the diff engine's stringified
	// property_changes.
	String() string
}

// StringValue is a bare text property, including DSL identifiers that are
// not "true"/"false" (e.g. ClassName = Part resolves to StringValue("Part")).
type StringValue string

func (StringValue) propertyValue() {}
func (v StringValue) String() string { return string(v) }
func (v StringValue) Equal(other PropertyValue) bool {
	o, ok := other.(StringValue)
	return ok && v == o
}

// BoolValue is a DSL true/false literal.
type BoolValue bool

func (BoolValue) propertyValue() {}
func (v BoolValue) String() string { return fmt.Sprintf("%t", bool(v)) }
func (v BoolValue) Equal(other PropertyValue) bool {
	o, ok := other.(BoolValue)
	return ok && v == o
}

// NumberValue is a DSL numeric literal, stored as float64 regardless of
// whether the source text carried a fractional part.
type NumberValue float64

func (NumberValue) propertyValue() {}
func (v NumberValue) String() string { return fmt.Sprintf("%g", float64(v)) }
func (v NumberValue) Equal(other PropertyValue) bool {
	o, ok := other.(NumberValue)
	return ok && v == o
}

// Vector3Value is a Vector3.new(x, y, z) literal.
type Vector3Value struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (Vector3Value) propertyValue() {}
func (v Vector3Value) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", v.X, v.Y, v.Z)
}
func (v Vector3Value) Equal(other PropertyValue) bool {
	o, ok := other.(Vector3Value)
	return ok && v == o
}

// CFrameValue is a CFrame.new(x, y, z) literal: a position plus a
// 12-float affine basis laid out [tx,ty,tz, r00,r01,r02, r10,r11,r12,
// r20,r21,r22]. The DSL only ever constructs the translation-only form
// (identity rotation); the full basis is carried so the loader and
// renderer can agree on layout even when a future DSL extension fills in
// rotation components.
type CFrameValue struct {
	Position   Vector3Value
	Components [12]float32
}

func NewCFrameFromPosition(x, y, z float32) CFrameValue {
	return CFrameValue{
		Position:   Vector3Value{X: x, Y: y, Z: z},
		Components: [12]float32{x, y, z, 1, 0, 0, 0, 1, 0, 0, 0, 1},
	}
}

func (CFrameValue) propertyValue() {}
func (v CFrameValue) String() string {
	return fmt.Sprintf("CFrame(%g, %g, %g)", v.Position.X, v.Position.Y, v.Position.Z)
}
func (v CFrameValue) Equal(other PropertyValue) bool {
	o, ok := other.(CFrameValue)
	return ok && v == o
}

// Color3Value is a normalized (0..1) RGB triple.
type Color3Value struct {
	R, G, B float32
}

func Color3FromRGB(r, g, b float32) Color3Value {
	return Color3Value{R: r / 255, G: g / 255, B: b / 255}
}

func (Color3Value) propertyValue() {}
func (v Color3Value) String() string {
	return fmt.Sprintf("Color3(%g, %g, %g)", v.R, v.G, v.B)
}
func (v Color3Value) Equal(other PropertyValue) bool {
	o, ok := other.(Color3Value)
	return ok && v == o
}

// UDim2Value is a 2D layout metric: parent-relative scale plus absolute
// pixel offset, per axis.
type UDim2Value struct {
	XScale  float32
	XOffset int32
	YScale  float32
	YOffset int32
}

func (UDim2Value) propertyValue() {}
func (v UDim2Value) String() string {
	return fmt.Sprintf("UDim2(%g, %d, %g, %d)", v.XScale, v.XOffset, v.YScale, v.YOffset)
}
func (v UDim2Value) Equal(other PropertyValue) bool {
	o, ok := other.(UDim2Value)
	return ok && v == o
}

// EnumValue is a qualified dotted identifier, e.g. "Enum.PartType.Ball".
type EnumValue string

func (EnumValue) propertyValue() {}
func (v EnumValue) String() string { return string(v) }
func (v EnumValue) Equal(other PropertyValue) bool {
	o, ok := other.(EnumValue)
	return ok && v == o
}

var enumPattern = regexp.MustCompile(`^Enum\.[A-Za-z_][A-Za-z0-9_]*\.[A-Za-z_][A-Za-z0-9_]*$`)

// Properties is the ordered-by-key-insensitive mapping from property name
// to PropertyValue carried by an Instance. It has custom JSON codecs
// because PropertyValue is an interface: the wire form distinguishes
// variants by shape, not by an explicit tag.
type Properties map[string]PropertyValue

// MarshalJSON encodes each property using its variant's natural shape:
// strings/enums as JSON strings, bools as JSON booleans, numbers as JSON
// numbers, and the remaining variants as small objects.
func (p Properties) MarshalJSON() ([]byte, error) {
	raw := make(map[string]json.RawMessage, len(p))
	for k, v := range p {
		data, err := marshalPropertyValue(v)
		if err != nil {
			return nil, fmt.Errorf("scene: marshal property %q: %w", k, err)
		}
		raw[k] = data
	}
	return json.Marshal(raw)
}

func marshalPropertyValue(v PropertyValue) (json.RawMessage, error) {
	switch val := v.(type) {
	case StringValue:
		return json.Marshal(string(val))
	case EnumValue:
		return json.Marshal(string(val))
	case BoolValue:
		return json.Marshal(bool(val))
	case NumberValue:
		return json.Marshal(float64(val))
	case Vector3Value:
		return json.Marshal(struct {
			X float32 `json:"x"`
			Y float32 `json:"y"`
			Z float32 `json:"z"`
		}{val.X, val.Y, val.Z})
	case CFrameValue:
		return json.Marshal(struct {
			Position struct {
				X float32 `json:"x"`
				Y float32 `json:"y"`
				Z float32 `json:"z"`
			} `json:"position"`
			Components [12]float32 `json:"components"`
		}{
			Position: struct {
				X float32 `json:"x"`
				Y float32 `json:"y"`
				Z float32 `json:"z"`
			}{val.Position.X, val.Position.Y, val.Position.Z},
			Components: val.Components,
		})
	case Color3Value:
		return json.Marshal(struct {
			R float32 `json:"r"`
			G float32 `json:"g"`
			B float32 `json:"b"`
		}{val.R, val.G, val.B})
	case UDim2Value:
		return json.Marshal(struct {
			XS float32 `json:"xs"`
			XO int32   `json:"xo"`
			YS float32 `json:"ys"`
			YO int32   `json:"yo"`
		}{val.XScale, val.XOffset, val.YScale, val.YOffset})
	default:
		return nil, fmt.Errorf("scene: unknown property value type %T", v)
	}
}

// UnmarshalJSON decodes each property by inspecting its raw JSON shape,
// the mirror image of MarshalJSON's shape-discrimination convention.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Properties, len(raw))
	for k, v := range raw {
		val, err := unmarshalPropertyValue(v)
		if err != nil {
			return fmt.Errorf("scene: unmarshal property %q: %w", k, err)
		}
		out[k] = val
	}
	*p = out
	return nil
}

func unmarshalPropertyValue(data json.RawMessage) (PropertyValue, error) {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if enumPattern.MatchString(asString) {
			return EnumValue(asString), nil
		}
		return StringValue(asString), nil
	}

	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		return BoolValue(asBool), nil
	}

	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err == nil {
		return NumberValue(asNumber), nil
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("unrecognized property shape: %s", string(data))
	}

	switch {
	case hasKeys(shape, "x", "y", "z"):
		var v struct{ X, Y, Z float32 }
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return Vector3Value{X: v.X, Y: v.Y, Z: v.Z}, nil
	case hasKeys(shape, "position", "components"):
		var v struct {
			Position   struct{ X, Y, Z float32 }
			Components [12]float32
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return CFrameValue{Position: Vector3Value(v.Position), Components: v.Components}, nil
	case hasKeys(shape, "r", "g", "b"):
		var v struct{ R, G, B float32 }
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return Color3Value{R: v.R, G: v.G, B: v.B}, nil
	case hasKeys(shape, "xs", "xo", "ys", "yo"):
		var v struct {
			XS float32
			XO int32
			YS float32
			YO int32
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return UDim2Value{XScale: v.XS, XOffset: v.XO, YScale: v.YS, YOffset: v.YO}, nil
	default:
		return nil, fmt.Errorf("unrecognized property object shape: %s", string(data))
	}
}

func hasKeys(m map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
