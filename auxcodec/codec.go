package auxcodec

import (
	"bufio"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/tetofonta/asd/auxtable"
	"github.com/tetofonta/asd/grid"
)

// Encode writes table to w as a zlib-compressed stream of fixed-width
// records: a uint64 count, then per entry (cell.X, cell.Y as int32, cost
// as float64 bits, a hasNext byte, next.X/next.Y as int32).
func Encode(w io.Writer, table auxtable.Table) error {
	zw := zlib.NewWriter(w)

	if err := binary.Write(zw, binary.LittleEndian, uint64(len(table))); err != nil {
		zw.Close()
		return err
	}
	for cell, entry := range table {
		if err := writeRecord(zw, cell, entry); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

func writeRecord(w io.Writer, cell grid.Cell, entry auxtable.Entry) error {
	if err := binary.Write(w, binary.LittleEndian, int32(cell.X)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(cell.Y)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, math.Float64bits(entry.Cost)); err != nil {
		return err
	}
	hasNext := byte(0)
	if entry.HasNext {
		hasNext = 1
	}
	if err := binary.Write(w, binary.LittleEndian, hasNext); err != nil {
		return err
	}
	next := [2]int32{int32(entry.Next.X), int32(entry.Next.Y)}
	return binary.Write(w, binary.LittleEndian, next)
}

// Decode reads a stream written by Encode back into an auxtable.Table.
func Decode(r io.Reader) (auxtable.Table, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer zr.Close()

	br := bufio.NewReader(zr)

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	table := make(auxtable.Table, count)
	for i := uint64(0); i < count; i++ {
		cell, entry, err := readRecord(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		table[cell] = entry
	}
	return table, nil
}

func readRecord(r io.Reader) (grid.Cell, auxtable.Entry, error) {
	var x, y int32
	if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
		return grid.Cell{}, auxtable.Entry{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
		return grid.Cell{}, auxtable.Entry{}, err
	}

	var costBits uint64
	if err := binary.Read(r, binary.LittleEndian, &costBits); err != nil {
		return grid.Cell{}, auxtable.Entry{}, err
	}

	var hasNext byte
	if err := binary.Read(r, binary.LittleEndian, &hasNext); err != nil {
		return grid.Cell{}, auxtable.Entry{}, err
	}

	var next [2]int32
	if err := binary.Read(r, binary.LittleEndian, &next); err != nil {
		return grid.Cell{}, auxtable.Entry{}, err
	}

	return grid.Cell{X: int(x), Y: int(y)}, auxtable.Entry{
		Cost:    math.Float64frombits(costBits),
		Next:    grid.Cell{X: int(next[0]), Y: int(next[1])},
		HasNext: hasNext != 0,
	}, nil
}
