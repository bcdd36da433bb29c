package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/fenboard-go/internal/fen"
	"github.com/lgbarn/fenboard-go/internal/hashing"
)

// JSONBoard represents one record in JSON format.
type JSONBoard struct {
	Input  string   `json:"input"`
	Line   int      `json:"line,omitempty"`
	Valid  bool     `json:"valid"`
	FEN    string   `json:"fen,omitempty"`
	Rows   []string `json:"rows,omitempty"`
	Pieces int      `json:"pieces,omitempty"`
	Hash   string   `json:"hash,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// RecordToJSON converts a record to its JSON form.
func RecordToJSON(rec Record) *JSONBoard {
	jb := &JSONBoard{
		Input: rec.Input,
		Line:  rec.Line,
	}
	if rec.Err != nil {
		jb.Error = rec.Err.Error()
		return jb
	}
	jb.Valid = true
	jb.FEN = fen.BoardToFEN(rec.Board)
	jb.Rows = strings.Split(rec.Board.String(), "\n")
	jb.Pieces = rec.Board.Count()
	jb.Hash = fmt.Sprintf("%016x", hashing.Hash(rec.Board))
	return jb
}

// JSONWriter writes one JSON object per line, including failed records.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WriteBoard encodes one record.
func (jw *JSONWriter) WriteBoard(rec Record) error {
	return jw.enc.Encode(RecordToJSON(rec))
}

// Close is a no-op; records are encoded immediately.
func (jw *JSONWriter) Close() error {
	return nil
}
