package integer

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// Encoder writes integers as control blocks.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes x to the writer.
func (e *Encoder) Encode(x Int) (err error) {
	defer Error.WrapP(&err)

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	var blk []byte

	size := len(data)
	switch {
	case size == 1 && data[0]&Data.Mask == data[0]:
		blk = []byte{Data.Prefix | data[0]}
	case size == 2 && data[0]&Data1.Mask == data[0]:
		blk = []byte{Data1.Prefix | data[0], data[1]}
	case size == 3 && data[0]&Data2.Mask == data[0]:
		blk = []byte{Data2.Prefix | data[0], data[1], data[2]}
	case size <= 64:
		blk = append([]byte{DataSize.Prefix | byte(size-1)}, data...)
	default:
		var sb [8]byte
		binary.BigEndian.PutUint64(sb[:], uint64(size-1))

		// Trim the size down to the bytes it needs, keeping at least one.
		i := 0
		for i < len(sb)-1 && sb[i] == 0 {
			i++
		}

		blk = make([]byte, 0, 1+len(sb)-i+size)
		blk = append(blk, DataSizeSize.Prefix|byte(len(sb)-i-1))
		blk = append(blk, sb[i:]...)
		blk = append(blk, data...)
	}

	_, err = e.w.Write(blk)
	if err != nil {
		return err
	}

	return nil
}

// Decoder reads integers written by an Encoder.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads the next integer into x. It returns io.EOF, unwrapped, when
// the stream ends cleanly before a control block.
func (d *Decoder) Decode(x *Int) (err error) {
	var ctl [1]byte

	_, err = io.ReadFull(d.r, ctl[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}

		return Error.Wrap(err)
	}

	defer Error.WrapP(&err)

	t, ok := Types.Match(ctl[0])
	if !ok {
		return Error.New("unexpected byte: %08b", ctl[0])
	}

	var data []byte

	switch t {
	case Data:
		data = []byte{ctl[0] & t.Mask}
	case Data1:
		data = make([]byte, 2)
		data[0] = ctl[0] & t.Mask
		err = d.read(data[1:])
	case Data2:
		data = make([]byte, 3)
		data[0] = ctl[0] & t.Mask
		err = d.read(data[1:])
	case DataSize:
		data = make([]byte, int(ctl[0]&t.Mask)+1)
		err = d.read(data)
	case DataSizeSize:
		var sb [8]byte
		n := int(ctl[0]&t.Mask) + 1

		err = d.read(sb[len(sb)-n:])
		if err != nil {
			return err
		}

		size := binary.BigEndian.Uint64(sb[:])
		if size >= math.MaxInt32 {
			return Error.New("block too large: %d bytes", size+1)
		}

		data, err = d.readN(int64(size) + 1)
	}
	if err != nil {
		return err
	}

	return x.UnmarshalBinary(data)
}

// read fills buf. Running out of input inside a block is unexpected.
func (d *Decoder) read(buf []byte) (err error) {
	_, err = io.ReadFull(d.r, buf)
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

// readN reads exactly n bytes without trusting n for the allocation.
func (d *Decoder) readN(n int64) (data []byte, err error) {
	data, err = io.ReadAll(io.LimitReader(d.r, n))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) != n {
		return nil, io.ErrUnexpectedEOF
	}

	return data, nil
}
