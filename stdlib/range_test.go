package stdlib

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pair[T any] struct {
	I int
	V T
}

func collectPairs[T any](seq func(func(int, T) bool)) []pair[T] {
	var pairs []pair[T]
	for i, v := range seq {
		pairs = append(pairs, pair[T]{i, v})
	}
	return pairs
}

func TestUnitStepExclusive(t *testing.T) {
	bounds := [][2]int{{0, 10}, {-3, 4}, {1, 2}, {-10, -5}}
	for _, b := range bounds {
		r := Must(Int(b[0], b[1], false, 1))
		var want []int
		for i := b[0]; i < b[1]; i++ {
			want = append(want, i)
		}
		if diff := cmp.Diff(want, r.Values()); diff != "" {
			t.Errorf("%s: unexpected values (-want +got):\n%s", r, diff)
		}
		if r.Len() != b[1]-b[0] {
			t.Errorf("%s: Len() = %d, want %d", r, r.Len(), b[1]-b[0])
		}
	}
}

func TestRangeValues(t *testing.T) {
	tests := []struct {
		name      string
		lower     int
		upper     int
		inclusive bool
		step      int
		want      []int
		sum       int
	}{
		{"inclusive upward", 1, 5, true, 1, []int{1, 2, 3, 4, 5}, 15},
		{"inclusive downward", 5, 1, true, -1, []int{5, 4, 3, 2, 1}, 15},
		{"exclusive downward", 5, 1, false, -1, []int{5, 4, 3, 2}, 14},
		{"uneven step exclusive", 1, 9, false, 3, []int{1, 4, 7}, 12},
		{"uneven step inclusive", 1, 9, true, 3, []int{1, 4, 7}, 12},
		{"even step exclusive", 1, 10, false, 3, []int{1, 4, 7}, 12},
		{"even step inclusive", 1, 10, true, 3, []int{1, 4, 7, 10}, 22},
		{"uneven downward", 10, 0, false, -4, []int{10, 6, 2}, 18},
		{"wrong direction down", 1, 2, false, -1, nil, 0},
		{"wrong direction up", 2, 1, false, 1, nil, 0},
		{"equal bounds inclusive down", 1, 1, true, -1, nil, 0},
		{"equal bounds inclusive up", 1, 1, true, 1, nil, 0},
		{"equal bounds exclusive", 3, 3, false, 1, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Int(tt.lower, tt.upper, tt.inclusive, tt.step)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, r.Values()); diff != "" {
				t.Errorf("unexpected values (-want +got):\n%s", diff)
			}
			if sum := Sum(r.All()); sum != tt.sum {
				t.Errorf("Sum() = %d, want %d", sum, tt.sum)
			}
			if r.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", r.Len(), len(tt.want))
			}
		})
	}
}

func TestIndexedRange(t *testing.T) {
	r := Must(Int(5, 0, true, -1))
	want := []pair[int]{{0, 5}, {1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0}}
	if diff := cmp.Diff(want, collectPairs(r.Indexed())); diff != "" {
		t.Fatalf("unexpected pairs (-want +got):\n%s", diff)
	}

	r = Must(Int(1, 70, true, 3))
	pairs := collectPairs(r.Indexed())
	if len(pairs) != 24 {
		t.Fatalf("got %d pairs, want 24", len(pairs))
	}
	for pos, p := range pairs {
		if p.I != pos || p.V != 1+3*pos {
			t.Errorf("pair %d = %v, want {%d %d}", pos, p, pos, 1+3*pos)
		}
	}
}

func TestRestartable(t *testing.T) {
	r := Must(Int(0, 20, false, 7))
	first, second := r.Values(), r.Values()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}

	// cursors from the same range do not share state
	a, b := r.Cursor(), r.Cursor()
	a.Advance()
	a.Advance()
	if b.Value() != 0 || a.Value() != 14 {
		t.Fatalf("cursor values = %d, %d; want 14, 0", a.Value(), b.Value())
	}
}

func TestEarlyStop(t *testing.T) {
	r := Must(Int(0, 100, false, 1))
	var got []int
	for v := range r.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

type celsius float64

func TestTypePreservation(t *testing.T) {
	for v := range Must(Uint8(1, 4, false, 1)).All() {
		if reflect.TypeOf(v) != reflect.TypeOf(uint8(0)) {
			t.Fatalf("value %v has type %T, want uint8", v, v)
		}
	}
	temps := Must(NewRange[celsius, celsius](-10, 10, true, 5))
	for _, v := range temps.Indexed() {
		if reflect.TypeOf(v) != reflect.TypeOf(celsius(0)) {
			t.Fatalf("value %v has type %T, want celsius", v, v)
		}
	}
	if diff := cmp.Diff([]celsius{-10, -5, 0, 5, 10}, temps.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestUnsignedWithNegativeStep(t *testing.T) {
	r := Must(Uint8(5, 0, true, -1))
	if diff := cmp.Diff([]uint8{5, 4, 3, 2, 1, 0}, r.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if r.End() != 255 {
		t.Errorf("End() = %d, want the wrapped value 255", r.End())
	}

	r = Must(Uint8(250, 255, false, 3))
	if diff := cmp.Diff([]uint8{250, 253}, r.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	// 300 wraps to 44, which no value of the range lands on.
	r = Must(Uint8(0, 250, false, 100))
	if diff := cmp.Diff([]uint8{0, 100, 200}, r.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if r.End() != 44 {
		t.Errorf("End() = %d, want the wrapped value 44", r.End())
	}

	huge := Must(Uint64(0, math.MaxUint64, false, math.MaxInt64))
	if diff := cmp.Diff([]uint64{0, math.MaxInt64, math.MaxUint64 - 1}, huge.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestUint8SumWidened(t *testing.T) {
	r := Must(Uint8(1, 100, true, 1))
	sum := Fold(r.All(), uint16(0), func(acc uint16, v uint8) uint16 { return acc + uint16(v) })
	if sum != 5050 {
		t.Fatalf("sum = %d, want 5050", sum)
	}
}

func TestWideSignedSpans(t *testing.T) {
	r := Must(Int8(-100, 100, true, 50))
	if diff := cmp.Diff([]int8{-100, -50, 0, 50, 100}, r.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	wide := Must(Int64(math.MinInt64, 0, false, math.MaxInt64))
	if diff := cmp.Diff([]int64{math.MinInt64, -1}, wide.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	r = Must(Int8(-100, 100, false, 90))
	if diff := cmp.Diff([]int8{-100, -10, 80}, r.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if r.End() != -86 {
		t.Errorf("End() = %d, want the wrapped value -86", r.End())
	}

	full := Must(Uint8(0, 255, false, 1))
	if full.Len() != 255 {
		t.Fatalf("Len() = %d, want 255", full.Len())
	}
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		want  error
	}{
		{"zero step", func() error { _, err := Int(1, 5, false, 0); return err }, ErrInvalidStep},
		{"zero float step", func() error { _, err := Float64(1, 5, true, 0); return err }, ErrInvalidStep},
		{"zero step equal bounds", func() error { _, err := Int(1, 1, true, 0); return err }, ErrInvalidStep},
		{"narrow step", func() error { _, err := NewRange[uint8, int16](1, 5, false, 1); return err }, ErrUnsupportedType},
		{"wide step", func() error { _, err := NewRange[uint32, int64](1, 5, false, 1); return err }, ErrUnsupportedType},
		{"mixed floats", func() error { _, err := NewRange[float32, float64](1, 5, false, 1); return err }, ErrUnsupportedType},
		{"integer step for float", func() error { _, err := NewRange[float64, int](1, 5, false, 1); return err }, ErrUnsupportedType},
		{"full uint8 inclusive", func() error { _, err := Uint8(0, 255, true, 1); return err }, ErrOverflow},
		{"full int8 inclusive", func() error { _, err := Int8(-128, 127, true, 1); return err }, ErrOverflow},
		{"uint64 too long", func() error { _, err := Uint64(0, math.MaxUint64, false, 1); return err }, ErrOverflow},
		{"float too many steps", func() error { _, err := Float32(0, 1e9, false, 1); return err }, ErrOverflow},
		{"step below float32 spacing", func() error { _, err := Float32(1e8, 1e8+64, false, 1); return err }, ErrOverflow},
		{"NaN bound", func() error { _, err := Float64(math.NaN(), 1, false, 1); return err }, ErrNotFinite},
		{"infinite step", func() error { _, err := Float64(0, 1, false, math.Inf(1)); return err }, ErrNotFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if !errors.Is(err, tt.want) {
				t.Fatalf("got error %v, want %v", err, tt.want)
			}
			var rangeErr *RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("error %v is not a *RangeError", err)
			}
		})
	}
}

func TestRangeErrorMessage(t *testing.T) {
	_, err := Int(1, 5, true, 0)
	want := "range 1..5 step 0: step must be non-zero"
	if err == nil || err.Error() != want {
		t.Fatalf(`got "%v", want "%s"`, err, want)
	}
}

func TestFloatRanges(t *testing.T) {
	r := Must(Float64(0, 1, false, 0.1))
	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}
	for i, v := range r.Indexed() {
		if want := float64(i) * 0.1; v != want {
			t.Errorf("value %d = %v, want %v", i, v, want)
		}
	}

	r = Must(Float64(0, 1, true, 0.1))
	if last, _ := r.Last(); r.Len() != 11 || last != 1 {
		t.Fatalf("Len() = %d, Last() = %v; want 11, 1", r.Len(), last)
	}

	tests := []struct {
		lower, upper float64
		inclusive    bool
		step         float64
		want         []float64
	}{
		{0.5, 2, true, 0.5, []float64{0.5, 1, 1.5, 2}},
		{0.5, 2, false, 0.5, []float64{0.5, 1, 1.5}},
		{0, 1, false, 0.3, []float64{0, 0.3, 0.6, 0.8999999999999999}},
		{0, 1, true, 0.3, []float64{0, 0.3, 0.6, 0.8999999999999999}},
		{1, 0, true, -0.25, []float64{1, 0.75, 0.5, 0.25, 0}},
		{0, 1, false, -0.5, nil},
	}
	for _, tt := range tests {
		r := Must(Float64(tt.lower, tt.upper, tt.inclusive, tt.step))
		if diff := cmp.Diff(tt.want, r.Values()); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", r, diff)
		}
	}
}

func TestFloat32Downward(t *testing.T) {
	r := Must(Float32(5, 1, true, -1))
	if diff := cmp.Diff([]float32{5, 4, 3, 2, 1}, r.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	tenths := Must(Float32(0, 1, false, 0.1))
	if tenths.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", tenths.Len())
	}
	if got := len(tenths.Values()); got != 10 {
		t.Fatalf("iterated %d values, want 10", got)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		r           *Range[int, int]
		end         int
		first, last int
		ok          bool
	}{
		{Must(Int(1, 5, false, 1)), 5, 1, 4, true},
		{Must(Int(1, 5, true, 1)), 6, 1, 5, true},
		{Must(Int(1, 9, false, 3)), 10, 1, 7, true},
		{Must(Int(2, 1, false, 1)), 2, 0, 0, false},
	}
	for _, tt := range tests {
		if tt.r.End() != tt.end {
			t.Errorf("%s: End() = %d, want %d", tt.r, tt.r.End(), tt.end)
		}
		first, ok := tt.r.First()
		last, _ := tt.r.Last()
		if first != tt.first || last != tt.last || ok != tt.ok {
			t.Errorf("%s: First/Last = %d, %d, %t; want %d, %d, %t", tt.r, first, last, ok, tt.first, tt.last, tt.ok)
		}
	}
}

func TestCovers(t *testing.T) {
	ints := Must(Int(1, 9, false, 3))
	for v, want := range map[int]bool{1: true, 4: true, 7: true, 0: false, 5: false, 9: false, 10: false} {
		if got := ints.Covers(v); got != want {
			t.Errorf("%s: Covers(%d) = %t, want %t", ints, v, got, want)
		}
	}
	bytes := Must(Uint8(5, 0, true, -1))
	for v, want := range map[uint8]bool{0: true, 5: true, 6: false, 255: false} {
		if got := bytes.Covers(v); got != want {
			t.Errorf("%s: Covers(%d) = %t, want %t", bytes, v, got, want)
		}
	}
	quarters := Must(Float64(0, 1, true, 0.25))
	for v, want := range map[float64]bool{0.75: true, 1: true, 0.8: false, -0.25: false, 1.25: false} {
		if got := quarters.Covers(v); got != want {
			t.Errorf("%s: Covers(%g) = %t, want %t", quarters, v, got, want)
		}
	}
	if Must(Int(2, 1, false, 1)).Covers(2) {
		t.Error("empty range covers its lower bound")
	}
}

func TestString(t *testing.T) {
	tests := map[string]string{
		Must(Int(1, 5, true, 1)).String():        "1..5",
		Must(Int(5, 1, true, -1)).String():       "5..1 step -1",
		Must(Int(1, 9, false, 3)).String():       "1...9 step 3",
		Must(Float64(0, 1, false, 0.1)).String(): "0...1 step 0.1",
	}
	for got, want := range tests {
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestSpan(t *testing.T) {
	r := Must(Span(0, 3))
	if diff := cmp.Diff([]int{0, 1, 2}, r.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	f := Must(Span(0.5, 3.0))
	if diff := cmp.Diff([]float64{0.5, 1.5, 2.5}, f.Values()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Must did not panic on a zero step")
		}
	}()
	Must(Int(0, 1, false, 0))
}

func TestSharedAcrossGoroutines(t *testing.T) {
	r := Must(Int(0, 1000, false, 1))
	want := r.Values()
	results := make(chan []int)
	for range 4 {
		go func() { results <- slices.Collect(r.All()) }()
	}
	for range 4 {
		if diff := cmp.Diff(want, <-results); diff != "" {
			t.Fatalf("(-want +got):\n%s", diff)
		}
	}
}
