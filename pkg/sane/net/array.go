package net

import "github.com/jmillikin/go-sane-net/pkg/sane/wire"

// encodeNullableArray writes the nullable-pointer-terminated array
// framing used by GET_DEVICES and GET_OPTION_DESCRIPTORS replies: a
// Word length-plus-one, then each element preceded by a non-null flag,
// terminated by a null flag in place of a final element.
func encodeNullableArray[T any](w *wire.Writer, items []T, encodeItem func(*wire.Writer, T) error) error {
	if err := w.WriteSize(len(items) + 1); err != nil {
		return err
	}
	for _, item := range items {
		if err := w.WriteNullFlag(false); err != nil {
			return err
		}
		if err := encodeItem(w, item); err != nil {
			return err
		}
	}
	return w.WriteNullFlag(true)
}

// decodeNullableArray reads the framing described above. Per the
// chosen terminator-strictness resolution (see DESIGN.md), decoding is
// lenient about early termination: it stops as soon as it sees a null
// flag, regardless of how many elements that implies relative to the
// declared length-plus-one. It is not lenient about the declared
// length being ignored entirely: the loop never runs more than
// lenPlusOne times, matching the reference decoder's `for _ii in
// 0..devices_len` bound. A server that declares a small length and
// never sends a terminating null flag therefore cannot make the
// client consume unbounded following bytes as array elements.
func decodeNullableArray[T any](r *wire.Reader, decodeItem func(*wire.Reader) (T, error)) ([]T, error) {
	lenPlusOne, err := r.ReadSize()
	if err != nil {
		return nil, err
	}
	var items []T
	if lenPlusOne > 1 && lenPlusOne-1 <= wire.MaxAlloc {
		items = make([]T, 0, lenPlusOne-1)
	}
	for i := 0; i < lenPlusOne; i++ {
		isNull, err := r.ReadNullFlag()
		if err != nil {
			return nil, err
		}
		if isNull {
			break
		}
		item, err := decodeItem(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
