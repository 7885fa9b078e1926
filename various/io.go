package various

import (
	"encoding/binary"
	"io"
)

var byteorder = binary.LittleEndian

func WriteFloatSlice(w io.Writer, s []float64) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, byteorder, v); err != nil {
			return err
		}
	}
	return nil
}

func ReadFloatSlice(r io.Reader) ([]float64, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([]float64, num)
	for i := 0; i < int(num); i++ {
		if err := binary.Read(r, byteorder, &s[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func WriteFloat32Slice(w io.Writer, s []float32) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	return binary.Write(w, byteorder, s)
}

func ReadFloat32Slice(r io.Reader) ([]float32, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([]float32, num)
	if err := binary.Read(r, byteorder, s); err != nil {
		return nil, err
	}
	return s, nil
}

func WriteUint32Slice(w io.Writer, s []uint32) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	return binary.Write(w, byteorder, s)
}

func ReadUint32Slice(r io.Reader) ([]uint32, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([]uint32, num)
	if err := binary.Read(r, byteorder, s); err != nil {
		return nil, err
	}
	return s, nil
}

func WriteByteSlice(w io.Writer, s []byte) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	_, err := w.Write(s)
	return err
}

func ReadByteSlice(r io.Reader) ([]byte, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	s := make([]byte, num)
	if _, err := io.ReadFull(r, s); err != nil {
		return nil, err
	}
	return s, nil
}
