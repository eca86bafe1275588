package fixed

import (
	"encoding/json"
	"testing"
)

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int64
	}{
		{"exact", 1.23, 123},
		{"whole", 4.0, 400},
		{"zero", 0, 0},
		{"negative", -1.23, -123},
		{"round up", 1.236, 124},
		{"round down", 1.234, 123},
		{"half rounds away", 1.235, 124},
		{"negative half rounds away", -1.235, -124},
		{"large", 1186070.5, 118607050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFloat(tt.input).Raw()
			if got != tt.want {
				t.Errorf("FromFloat(%v).Raw() = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// 1.005 is not exactly representable in binary: it is stored just below the
// true half, so half-away-from-zero rounding lands on 1.00, not 1.01. The
// rule is math.Round on value*100; this pins the observable outcome.
func TestFromFloatInexactHalf(t *testing.T) {
	if got := FromFloat(1.005).Raw(); got != 100 {
		t.Errorf("FromFloat(1.005).Raw() = %d, want 100", got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 0.01, 1.23, 4.2, 99.99, -3.1, 1186070.55} {
		p := FromFloat(f)
		if got := FromFloat(p.Float()); got != p {
			t.Errorf("FromFloat(%v) round trip = %v, want %v", f, got.Raw(), p.Raw())
		}
	}
}

func TestAddSub(t *testing.T) {
	a := FromRaw(123)
	b := FromRaw(77)

	if got := a.Add(b).Raw(); got != 200 {
		t.Errorf("Add = %d, want 200", got)
	}
	if got := a.Sub(b).Raw(); got != 46 {
		t.Errorf("Sub = %d, want 46", got)
	}
	// Exact on raw units, never re-rounded.
	if got := FromRaw(1).Add(FromRaw(2)).Raw(); got != 3 {
		t.Errorf("Add small = %d, want 3", got)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"one times one", 100, 100, 100},
		{"truncates remainder", 150, 33, 49}, // 1.50 * 0.33 = 0.495 -> 0.49
		{"negative truncates toward zero", -150, 33, -49},
		{"sub-hundredth product", 10, 10, 1}, // 0.10 * 0.10 = 0.01
		{"vanishing product", 3, 3, 0},       // 0.03 * 0.03 -> 0.00
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRaw(tt.a).Mul(FromRaw(tt.b)).Raw()
			if got != tt.want {
				t.Errorf("Mul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"even", 400, 200, 200},     // 4.00 / 2.00 = 2.00
		{"truncates", 100, 3, 3333}, // 1.00 / 0.03 = 33.33...
		{"negative truncates toward zero", -100, 3, -3333},
		{"scales dividend first", 1, 100, 1}, // 0.01 / 1.00 = 0.01
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRaw(tt.a).Div(FromRaw(tt.b))
			if err != nil {
				t.Fatalf("Div(%d, %d) error: %v", tt.a, tt.b, err)
			}
			if got.Raw() != tt.want {
				t.Errorf("Div(%d, %d) = %d, want %d", tt.a, tt.b, got.Raw(), tt.want)
			}
		})
	}
}

func TestDivByZero(t *testing.T) {
	for _, raw := range []int64{0, 1, -123, 118607050} {
		_, err := FromRaw(raw).Div(FromRaw(0))
		if err != ErrDivideByZero {
			t.Errorf("Div(%d, 0) error = %v, want ErrDivideByZero", raw, err)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		raw  int64
		want string
	}{
		{123, "1.23"},
		{100, "1.00"},
		{1, "0.01"},
		{0, "0.00"},
		{-50, "-0.50"},
		{420, "4.20"},
	}

	for _, tt := range tests {
		if got := FromRaw(tt.raw).String(); got != tt.want {
			t.Errorf("FromRaw(%d).String() = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, raw := range []int64{0, 1, 100, 123, 420, -50, 118607050} {
		p := FromRaw(raw)

		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("Marshal(%d): %v", raw, err)
		}

		var back Point
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if back != p {
			t.Errorf("round trip of raw %d via %s = %d", raw, data, back.Raw())
		}
	}
}

func TestUnmarshalFromWireFloat(t *testing.T) {
	// Two independent parses of the same wire value must be identical.
	var a, b Point
	if err := json.Unmarshal([]byte("19.357142857142857"), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte("19.357142857142857"), &b); err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("identical wire inputs decoded differently: %d vs %d", a.Raw(), b.Raw())
	}
	if a.Raw() != 1936 {
		t.Errorf("Raw = %d, want 1936", a.Raw())
	}

	var p Point
	if err := json.Unmarshal([]byte(`"4.2"`), &p); err == nil {
		t.Error("expected error unmarshaling a JSON string")
	}
}
