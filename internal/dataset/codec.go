package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat indicates an unsupported encoding name or file extension.
	ErrUnknownFormat = errors.New("unknown dataset format")
	// ErrMissingColumn indicates a CSV header lacks a required field.
	ErrMissingColumn = errors.New("missing dataset column")
	// ErrTrailingData indicates input continues past the record set.
	ErrTrailingData = errors.New("unexpected data after record set")
)

// Format names a tabular encoding for record sets.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// csvColumns is the header written by Encode, in field order. Decode also
// uses it to name absent fields.
var csvColumns = []string{
	"id",
	"name",
	"role",
	"resume",
	"decision",
	"reasonForDecision",
	"transcript",
	"jobDescription",
}

// Encode writes records to w in the given format.
func Encode(w io.Writer, format Format, records []candidate.Record) error {
	if records == nil {
		records = []candidate.Record{}
	}

	switch format {
	case FormatCSV:
		return encodeCSV(w, records)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads records from r. Every field must be present in JSON and YAML
// input, though it may be empty; unknown keys are rejected. Decision values are
// normalized where they parse; anything else is left for candidate.NewStore to
// reject with its position.
func Decode(r io.Reader, format Format) ([]candidate.Record, error) {
	var (
		records []candidate.Record
		docs    []recordDocument
	)

	switch format {
	case FormatCSV:
		var err error
		records, err = decodeCSV(r)
		if err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&docs); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json: %w", ErrTrailingData)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(&docs)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		if err == nil {
			var extra yaml.Node
			if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("decode yaml: %w: more than one document", ErrTrailingData)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if docs != nil {
		records = make([]candidate.Record, 0, len(docs))
		for i, doc := range docs {
			rec, err := doc.record(i)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
	}

	for i := range records {
		if d, err := candidate.ParseDecision(string(records[i].Decision)); err == nil {
			records[i].Decision = d
		}
	}
	return records, nil
}

// recordDocument mirrors candidate.Record with pointer fields so an absent key
// can be told apart from an empty value.
type recordDocument struct {
	ID                *string `json:"id" yaml:"id"`
	Name              *string `json:"name" yaml:"name"`
	Role              *string `json:"role" yaml:"role"`
	Resume            *string `json:"resume" yaml:"resume"`
	Decision          *string `json:"decision" yaml:"decision"`
	ReasonForDecision *string `json:"reasonForDecision" yaml:"reasonForDecision"`
	Transcript        *string `json:"transcript" yaml:"transcript"`
	JobDescription    *string `json:"jobDescription" yaml:"jobDescription"`
}

func (d recordDocument) record(index int) (candidate.Record, error) {
	fields := []*string{
		d.ID,
		d.Name,
		d.Role,
		d.Resume,
		d.Decision,
		d.ReasonForDecision,
		d.Transcript,
		d.JobDescription,
	}
	for i, value := range fields {
		if value == nil {
			return candidate.Record{}, fmt.Errorf("%w: record %d: %w: %s",
				candidate.ErrInvalidRecord, index, candidate.ErrMissingField, csvColumns[i])
		}
	}
	return candidate.Record{
		ID:                *d.ID,
		Name:              *d.Name,
		Role:              *d.Role,
		Resume:            *d.Resume,
		Decision:          candidate.Decision(*d.Decision),
		ReasonForDecision: *d.ReasonForDecision,
		Transcript:        *d.Transcript,
		JobDescription:    *d.JobDescription,
	}, nil
}

func encodeCSV(w io.Writer, records []candidate.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.Name,
			rec.Role,
			rec.Resume,
			string(rec.Decision),
			rec.ReasonForDecision,
			rec.Transcript,
			rec.JobDescription,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", rec.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// columnKey folds header names so the original export headers
// (ID, Reason_for_decision, Job_Description, ...) match the field names.
func columnKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
}

func decodeCSV(r io.Reader) ([]candidate.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []candidate.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := columnKey(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	index := make([]int, len(csvColumns))
	for i, col := range csvColumns {
		pos, ok := positions[columnKey(col)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		index[i] = pos
	}

	records := []candidate.Record{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(records)+1, err)
		}
		records = append(records, candidate.Record{
			ID:                row[index[0]],
			Name:              row[index[1]],
			Role:              row[index[2]],
			Resume:            row[index[3]],
			Decision:          candidate.Decision(row[index[4]]),
			ReasonForDecision: row[index[5]],
			Transcript:        row[index[6]],
			JobDescription:    row[index[7]],
		})
	}
	return records, nil
}
