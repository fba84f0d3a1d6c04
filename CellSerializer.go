package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized cell")

const cellRecordVersion byte = 1

// CellBinarySerializer encodes a cell record as
// version byte, uvarint id length, id, uvarint formula length, formula.
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(cellId string, formula string) []byte {
	record := make([]byte, 0, 1+2*binary.MaxVarintLen64+len(cellId)+len(formula))

	record = append(record, cellRecordVersion)
	record = appendRecordField(record, cellId)
	record = appendRecordField(record, formula)
	return record
}

func (s *CellBinarySerializer) Unmarshal(record []byte) (cellId string, formula string, err error) {
	if len(record) == 0 {
		return "", "", fmt.Errorf("%w: empty record", SerializerError)
	}
	if record[0] != cellRecordVersion {
		return "", "", fmt.Errorf("%w: unsupported record version %d", SerializerError, record[0])
	}

	rest := record[1:]
	if cellId, rest, err = readRecordField(rest, "cell id"); err != nil {
		return "", "", err
	}
	if cellId == "" {
		return "", "", fmt.Errorf("%w: empty cell id", SerializerError)
	}

	if formula, rest, err = readRecordField(rest, "formula"); err != nil {
		return "", "", err
	}
	if len(rest) > 0 {
		return "", "", fmt.Errorf("%w: %d trailing bytes after %s", SerializerError, len(rest), cellId)
	}

	return cellId, formula, nil
}

func appendRecordField(record []byte, field string) []byte {
	record = binary.AppendUvarint(record, uint64(len(field)))
	return append(record, field...)
}

func readRecordField(data []byte, name string) (string, []byte, error) {
	length, n := binary.Uvarint(data)
	if n <= 0 {
		return "", nil, fmt.Errorf("%w: malformed %s length", SerializerError, name)
	}

	data = data[n:]
	if uint64(len(data)) < length {
		return "", nil, fmt.Errorf("%w: %s length %d exceeds record size", SerializerError, name, length)
	}

	return string(data[:length]), data[length:], nil
}
