/*Package fortio reads and writes Fortran unformatted sequential records.

Every record is wrapped by its byte count on both ends: a little-endian
4-byte unsigned length, the raw payload, then the same 4-byte length
repeated. Readers must know the exact size of the record they expect, and
any disagreement between the expected, declared, and trailing sizes is a
data-format error rather than something to recover from mid-stream.
*/
package fortio

import (
	"encoding/binary"
	"fmt"
	"io"
)

func readMarker(rd io.Reader) (uint32, error) {
	var n uint32
	if err := binary.Read(rd, binary.LittleEndian, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func readRecord(rd io.Reader, data interface{}, bytes int) error {
	n, err := readMarker(rd)
	if err != nil {
		return err
	}
	if int(n) != bytes {
		return fmt.Errorf(
			"Requested %d bytes of data, but next record contains %d bytes.",
			bytes, n,
		)
	}

	if err := binary.Read(rd, binary.LittleEndian, data); err != nil {
		return err
	}

	end, err := readMarker(rd)
	if err != nil {
		return err
	}
	if end != n {
		return fmt.Errorf(
			"Expected end of %d byte record, found %d.", n, end,
		)
	}
	return nil
}

func writeRecord(w io.Writer, data interface{}, bytes int) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(bytes)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint32(bytes))
}

// ReadUint32s reads one record into buf. The record must contain exactly
// len(buf) values.
func ReadUint32s(rd io.Reader, buf []uint32) error {
	return readRecord(rd, buf, 4*len(buf))
}

// ReadFloat64s reads one record into buf. The record must contain exactly
// len(buf) values.
func ReadFloat64s(rd io.Reader, buf []float64) error {
	return readRecord(rd, buf, 8*len(buf))
}

// WriteUint32s writes xs as a single record.
func WriteUint32s(w io.Writer, xs []uint32) error {
	return writeRecord(w, xs, 4*len(xs))
}

// WriteFloat64s writes xs as a single record.
func WriteFloat64s(w io.Writer, xs []float64) error {
	return writeRecord(w, xs, 8*len(xs))
}
