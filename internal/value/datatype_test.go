package value

import "testing"

func TestDataTypeValidatorColor(t *testing.T) {
	v := DataTypeValidator{Type: TypeColor}
	for _, ok := range []struct {
		s    string
		want bool
	}{
		{"#1e1e2e", true},
		{"#fff", true},
		{"#ghijkl", false},
		{"rgb(10, 20, 30)", true},
		{"currentcolor", true},
		{"not-a-color", false},
	} {
		if got := v.Validate(ok.s); got != ok.want {
			t.Errorf("Validate(%q) = %v, want %v", ok.s, got, ok.want)
		}
	}
}

func TestDataTypeValidatorLength(t *testing.T) {
	v := DataTypeValidator{Type: TypeLength}
	for _, ok := range []struct {
		s    string
		want bool
	}{
		{"10px", true},
		{"1.5rem", true},
		{"0", true},
		{"10", false},
		{"calc(100%)", false},
	} {
		if got := v.Validate(ok.s); got != ok.want {
			t.Errorf("Validate(%q) = %v, want %v", ok.s, got, ok.want)
		}
	}
}

func TestDataTypeValidatorAngle(t *testing.T) {
	v := DataTypeValidator{Type: TypeAngle}
	if !v.Validate("45deg") {
		t.Errorf("expected 45deg to validate as an angle")
	}
	if v.Validate("45") {
		t.Errorf("expected a bare number to fail angle validation")
	}
}

func TestDataTypeValidatorAcceptsCSSWideKeywords(t *testing.T) {
	v := DataTypeValidator{Type: TypeLength}
	if !v.Validate("inherit") {
		t.Errorf("expected inherit to validate regardless of data type")
	}
}

func TestPropertyValidatorRoundTripsThroughDouceur(t *testing.T) {
	v := PropertyValidator{Property: "color"}
	if !v.Validate("#336699") {
		t.Errorf("expected a valid hex color to round-trip through the declaration parser")
	}
	if v.Validate("") {
		t.Errorf("expected an empty value to be rejected")
	}
}
