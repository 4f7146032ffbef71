package rest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/feddict/feddict-backend/internal/domain"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// decodeCandidates extracts term candidates from an upload request.
// Supported shapes: a raw JSON array, a raw CSV document, or a multipart
// form with the file under the "file" field (format picked by extension).
func decodeCandidates(r *http.Request) ([]domain.TermCandidate, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, errors.New("missing or invalid Content-Type")
	}

	body := io.LimitReader(r.Body, maxUploadBytes)

	switch {
	case mediaType == "application/json":
		return decodeJSONCandidates(body)
	case mediaType == "text/csv":
		return decodeCSVCandidates(body)
	case strings.HasPrefix(mediaType, "multipart/"):
		return decodeMultipartCandidates(r)
	default:
		return nil, fmt.Errorf("unsupported Content-Type %q", mediaType)
	}
}

func decodeJSONCandidates(body io.Reader) ([]domain.TermCandidate, error) {
	var candidates []domain.TermCandidate
	if err := json.NewDecoder(body).Decode(&candidates); err != nil {
		return nil, errors.New("invalid JSON: expected an array of {term, definition, category}")
	}
	return candidates, nil
}

// decodeCSVCandidates reads a CSV document with a header row. Columns are
// matched by name (term, definition, category), so order does not matter.
func decodeCSVCandidates(body io.Reader) ([]domain.TermCandidate, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV: missing header row")
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"term", "definition", "category"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("invalid CSV: missing %q column", required)
		}
	}

	var candidates []domain.TermCandidate
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid CSV at line %d", line)
		}

		field := func(name string) string {
			i := cols[name]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		candidates = append(candidates, domain.TermCandidate{
			Term:       field("term"),
			Definition: field("definition"),
			Category:   field("category"),
		})
	}

	return candidates, nil
}

func decodeMultipartCandidates(r *http.Request) ([]domain.TermCandidate, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, errors.New("invalid multipart form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New(`multipart form must carry a "file" field`)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".json":
		return decodeJSONCandidates(file)
	case ".csv":
		return decodeCSVCandidates(file)
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected .csv or .json", header.Filename)
	}
}
