// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Fracs.

package numeric

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const fracGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
//
// The encoding is: version byte, sign byte (1 if negative), the big-endian
// uint32 length of the numerator, the numerator magnitude bytes, then the
// denominator magnitude bytes.
func (x Frac) GobEncode() ([]byte, error) {
	nb := x.n().Bytes()
	db := x.d().Bytes()
	buf := make([]byte, 1+1+4+len(nb)+len(db))
	buf[0] = fracGobVersion
	if x.Sign() < 0 {
		buf[1] = 1
	}
	binary.BigEndian.PutUint32(buf[2:], uint32(len(nb)))
	copy(buf[6:], nb)
	copy(buf[6+len(nb):], db)
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface. The decoded value is
// brought back to canonical form. A zero denominator is reported as
// ErrDivisionByZero.
func (z *Frac) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Frac{}
		return nil
	}
	if buf[0] != fracGobVersion {
		return fmt.Errorf("Frac.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 6 {
		return fmt.Errorf("Frac.GobDecode: buffer too small (%d bytes)", len(buf))
	}
	n := binary.BigEndian.Uint32(buf[2:])
	if uint64(n) > uint64(len(buf)-6) {
		return fmt.Errorf("Frac.GobDecode: numerator length %d out of range", n)
	}
	num := new(big.Int).SetBytes(buf[6 : 6+n])
	den := new(big.Int).SetBytes(buf[6+n:])
	if den.Sign() == 0 {
		return ErrDivisionByZero{OpDecode}
	}
	if buf[1]&1 != 0 {
		num.Neg(num)
	}
	*z = normFrac(num, den)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The text form
// is the one returned by x.String.
func (x Frac) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// the format of ParseFrac.
func (z *Frac) UnmarshalText(text []byte) error {
	f, err := ParseFrac(string(text))
	if err != nil {
		if _, ok := err.(ErrDivisionByZero); ok {
			return err
		}
		return fmt.Errorf("numeric: cannot unmarshal %q into a *numeric.Frac (%v)", text, err)
	}
	*z = f
	return nil
}
