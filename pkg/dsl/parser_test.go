package dsl_test

import (
	"testing"

	"github.com/ludock-sim/ludock/pkg/dsl"
	"github.com/ludock-sim/ludock/pkg/scene"
)

func TestParseFullDSL(t *testing.T) {
	input := `
		ClassName = Part
		Transparency = 0.5
		Anchored = true
		Size = Vector3.new(4, 1, 2)
		Color = Color3.fromRGB(255, 0, 0)
	`
	props, err := dsl.Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got, want := props["ClassName"], scene.StringValue("Part"); !got.Equal(want) {
		t.Errorf("ClassName = %v, want %v", got, want)
	}
	if got, want := props["Transparency"], scene.NumberValue(0.5); !got.Equal(want) {
		t.Errorf("Transparency = %v, want %v", got, want)
	}
	if got, want := props["Anchored"], scene.BoolValue(true); !got.Equal(want) {
		t.Errorf("Anchored = %v, want %v", got, want)
	}
	size, ok := props["Size"].(scene.Vector3Value)
	if !ok || size.X != 4 || size.Y != 1 || size.Z != 2 {
		t.Errorf("Size = %#v, want Vector3(4,1,2)", props["Size"])
	}
	color, ok := props["Color"].(scene.Color3Value)
	if !ok || color.R != 1 {
		t.Errorf("Color = %#v, want r=1", props["Color"])
	}
}

func TestParseEnum(t *testing.T) {
	props, err := dsl.Parse(`Shape = Enum.PartType.Ball`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := props["Shape"], scene.EnumValue("Enum.PartType.Ball"); !got.Equal(want) {
		t.Errorf("Shape = %v, want %v", got, want)
	}
}

func TestParseBareIdentifierIsString(t *testing.T) {
	props, err := dsl.Parse(`ClassName = Part`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := props["ClassName"], scene.StringValue("Part"); !got.Equal(want) {
		t.Errorf("ClassName = %v, want %v", got, want)
	}
}

func TestParseLaterAssignmentOverrides(t *testing.T) {
	props, err := dsl.Parse("Name = \"A\"\nName = \"B\"")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := props["Name"], scene.StringValue("B"); !got.Equal(want) {
		t.Errorf("Name = %v, want %v", got, want)
	}
}

func TestParseErrorKeepsPartialProperties(t *testing.T) {
	input := "Good = 1\nBad = ="
	props, err := dsl.Parse(input)
	if err == nil {
		t.Fatalf("Parse() expected error for malformed assignment")
	}
	if got, want := props["Good"], scene.NumberValue(1); !got.Equal(want) {
		t.Errorf("Good = %v, want %v", got, want)
	}
}

func TestParseUDim2(t *testing.T) {
	props, err := dsl.Parse(`Size = UDim2.new(0.5, 0, 0.5, 0)`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	v, ok := props["Size"].(scene.UDim2Value)
	if !ok || v.XScale != 0.5 || v.XOffset != 0 || v.YScale != 0.5 || v.YOffset != 0 {
		t.Errorf("Size = %#v, want UDim2(0.5,0,0.5,0)", props["Size"])
	}
}

func TestParseString(t *testing.T) {
	props, err := dsl.Parse(`Greeting = "hi there"`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, want := props["Greeting"], scene.StringValue("hi there"); !got.Equal(want) {
		t.Errorf("Greeting = %v, want %v", got, want)
	}
}
