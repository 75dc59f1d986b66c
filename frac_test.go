// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkFrac_Add(b *testing.B) {
	x := NewFrac(355, 113)
	y := NewFrac(-22, 7)
	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}

func BenchmarkFrac_Cmp(b *testing.B) {
	x := NewFrac(355, 113)
	y := NewFrac(22, 7)
	for i := 0; i < b.N; i++ {
		x.Cmp(y)
	}
}

// validate checks that x is in canonical form.
func (x Frac) validate(t *testing.T) {
	t.Helper()
	var g big.Int
	g.GCD(nil, nil, new(big.Int).Abs(x.n()), x.d())
	require.Equal(t, 1, x.d().Sign(), "%v: denominator must be positive", x)
	require.Zero(t, g.Cmp(bigOne), "%v: not reduced (gcd = %s)", x, &g)
}

func TestFracZeroValue(t *testing.T) {
	var x Frac
	assert.Equal(t, "0/1", x.String())
	assert.Equal(t, 0, x.Sign())
	assert.True(t, x.IsInt())
	assert.Equal(t, int64(1), x.Denom().Int64())

	// zero value can be used in any position of binary operations
	one := NewFrac(1, 1)
	assert.Equal(t, "1/1", x.Add(one).String())
	assert.Equal(t, "-1/1", x.Sub(one).String())
	assert.Equal(t, "0/1", x.Mul(one).String())
	assert.Equal(t, "0/1", x.Quo(one).String())
	assert.True(t, x.Equal(NewFrac(0, 5)))
	assert.Zero(t, x.Cmp(NewFrac(0, -7)))
}

func TestNewFrac(t *testing.T) {
	for _, d := range []struct {
		num, den int64
		want     string
	}{
		{2, 4, "1/2"},
		{-1, -3, "1/3"},
		{1, -3, "-1/3"},
		{-6, 8, "-3/4"},
		{6, -8, "-3/4"},
		{0, 5, "0/1"},
		{0, -5, "0/1"},
		{7, 1, "7/1"},
		{-1 << 63, -1 << 63, "1/1"},
		{-1 << 63, 2, "-4611686018427387904/1"},
		{1, -1 << 63, "-1/9223372036854775808"},
	} {
		x := NewFrac(d.num, d.den)
		x.validate(t)
		assert.Equal(t, d.want, x.String(), "NewFrac(%d, %d)", d.num, d.den)
	}

	// other integer types
	assert.Equal(t, "128/255", NewFrac(uint8(128), uint8(255)).String())
	assert.Equal(t, "9223372036854775808/9223372036854775809", NewFrac(uint64(1<<63), uint64(1<<63+1)).String())
	assert.Equal(t, "-3/1", FracFromInt(int16(-3)).String())
}

func TestNewFrac_zeroDenominator(t *testing.T) {
	assert.PanicsWithValue(t, ErrDivisionByZero{OpNew}, func() { NewFrac(1, 0) })
	assert.PanicsWithValue(t, ErrDivisionByZero{OpNew}, func() { NewFrac(0, 0) })

	_, err := FracFromBig(big.NewInt(1), new(big.Int))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero{}))
	assert.Equal(t, "numeric: division by zero in New", err.Error())
}

func TestFracFromBig(t *testing.T) {
	n, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	d, _ := new(big.Int).SetString("987654321098765432109876543210", 10)
	x, err := FracFromBig(n, d)
	require.NoError(t, err)
	x.validate(t)
	assert.Equal(t, "-13717421/109739369", x.String())
	// arguments are not modified or aliased
	assert.Equal(t, "-123456789012345678901234567890", n.String())
	assert.Equal(t, "987654321098765432109876543210", d.String())
	n.SetInt64(1)
	assert.Equal(t, "-13717421/109739369", x.String())
}

func TestFracFromRat(t *testing.T) {
	r := big.NewRat(-10, 4)
	x := FracFromRat(r)
	assert.Equal(t, "-5/2", x.String())
	assert.Zero(t, x.Rat().Cmp(r))
	f, exact := x.Float64()
	assert.Equal(t, -2.5, f)
	assert.True(t, exact)
	_, exact = NewFrac(1, 3).Float64()
	assert.False(t, exact)
}

func TestFrac_accessorsReturnCopies(t *testing.T) {
	x := NewFrac(3, 4)
	x.Num().SetInt64(100)
	x.Denom().SetInt64(100)
	assert.Equal(t, "3/4", x.String())
}

func TestFrac_arith(t *testing.T) {
	for _, d := range []struct {
		x, y               string
		sum, diff, prod, q string
	}{
		{"1/3", "1/6", "1/2", "1/6", "1/18", "2/1"},
		{"1/2", "1/2", "1/1", "0/1", "1/4", "1/1"},
		{"-3/4", "2/3", "-1/12", "-17/12", "-1/2", "-9/8"},
		{"5", "-1/5", "24/5", "26/5", "-1/1", "-25/1"},
		{"0", "7/3", "7/3", "-7/3", "0/1", "0/1"},
	} {
		x, err := ParseFrac(d.x)
		require.NoError(t, err)
		y, err := ParseFrac(d.y)
		require.NoError(t, err)
		for _, r := range []struct {
			op   string
			got  Frac
			want string
		}{
			{"+", x.Add(y), d.sum},
			{"-", x.Sub(y), d.diff},
			{"*", x.Mul(y), d.prod},
			{"/", x.Quo(y), d.q},
		} {
			r.got.validate(t)
			assert.Equal(t, r.want, r.got.String(), "%v %s %v", x, r.op, y)
		}
	}
}

func TestFrac_Quo_zero(t *testing.T) {
	assert.PanicsWithValue(t, ErrDivisionByZero{OpQuo}, func() { NewFrac(1, 2).Quo(NewFrac(0, 3)) })
	assert.PanicsWithValue(t, ErrDivisionByZero{OpQuo}, func() { NewFrac(1, 2).Quo(Frac{}) })
	assert.PanicsWithValue(t, ErrDivisionByZero{OpInv}, func() { Frac{}.Inv() })
}

func TestFrac_unary(t *testing.T) {
	x := NewFrac(-3, 4)
	assert.Equal(t, "3/4", x.Neg().String())
	assert.Equal(t, "3/4", x.Abs().String())
	assert.Equal(t, "-4/3", x.Inv().String())
	assert.Equal(t, "7/2", NewFrac(2, 7).Inv().String())
	assert.Equal(t, "0/1", Frac{}.Neg().String())
	assert.Equal(t, "-3/4", x.String(), "operands are not modified")
}

func TestFrac_Cmp(t *testing.T) {
	for _, d := range []struct {
		x, y string
		r    int
	}{
		{"1/3", "2/3", -1},
		{"2/3", "1/6", 1},
		{"2/4", "1/2", 0},
		{"-1/2", "1/3", -1},
		{"-1/2", "-2/3", 1},
		{"0", "0/9", 0},
		// would be equal as float64
		{"9007199254740993/9007199254740992", "1", 1},
	} {
		x, _ := ParseFrac(d.x)
		y, _ := ParseFrac(d.y)
		assert.Equal(t, d.r, x.Cmp(y), "%v cmp %v", x, y)
		assert.Equal(t, -d.r, y.Cmp(x), "%v cmp %v", y, x)
	}
}

func TestFrac_sort(t *testing.T) {
	xs := []Frac{NewFrac(1, 3), NewFrac(2, 3), NewFrac(1, 6)}
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].Cmp(xs[j]) < 0 })
	var got []string
	for _, x := range xs {
		got = append(got, x.String())
	}
	assert.Equal(t, []string{"1/6", "1/3", "2/3"}, got)
}

func randFrac(rnd *rand.Rand) Frac {
	num := rnd.Int63n(1<<40) - 1<<39
	den := rnd.Int63n(1<<20) + 1
	if rnd.Intn(2) == 0 {
		den = -den
	}
	return NewFrac(num, den)
}

func TestFrac_properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a, b := randFrac(rnd), randFrac(rnd)
		a.validate(t)

		// round trips
		require.True(t, a.Add(b).Sub(b).Equal(a), "%v + %v - %v", a, b, b)
		if b.Sign() != 0 {
			require.Zero(t, a.Quo(b).Mul(b).Cmp(a), "%v / %v * %v", a, b, b)
		}

		// (a-b)² = a² - 2ab + b²
		d := a.Sub(b)
		ab := a.Mul(b)
		require.True(t, d.Mul(d).Equal(a.Mul(a).Sub(ab.Add(ab)).Add(b.Mul(b))))

		// Cmp agrees with big.Rat
		require.Equal(t, a.Rat().Cmp(b.Rat()), a.Cmp(b))
	}
}

func TestFrac_bigOperands(t *testing.T) {
	x, err := ParseFrac("1/" + strings.Repeat("9", 60))
	require.NoError(t, err)
	y := x.Mul(x)
	y.validate(t)
	assert.Equal(t, 120, len(y.Denom().String()))
	assert.True(t, y.Quo(x).Equal(x))
}

func ExampleFrac_Format() {
	x := NewFrac(-2, 3)
	fmt.Printf("%v|%8s|%-8v|%.3f|%+.2f\n", x, x, x, x, x.Abs())
	fmt.Printf("%d\n", x)
	// Output:
	// -2/3|    -2/3|-2/3    |-0.667|+0.67
	// %!d(numeric.Frac=-2/3)
}

func ExampleNewFrac() {
	fmt.Println(NewFrac(2, 4), NewFrac(-1, -3), NewFrac(1, -3))
	// Output: 1/2 1/3 -1/3
}
