package ingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/qepting91/linkpulse/internal/domain"
)

// LoadProfiles reads a competitor list CSV with a label,profile_url header
// row. Rows without a usable http(s) profile URL are dropped, and a missing
// label falls back to the URL's trailing path segment.
func LoadProfiles(path string) ([]domain.CompetitorProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Wrap in BOM stripper
	r := csv.NewReader(stripBOM(f))
	r.FieldsPerRecord = -1

	var profiles []domain.CompetitorProfile
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		line++
		if line == 1 { continue } // Skip header

		// Validation (Fail-Soft)
		if len(record) < 2 {
			continue
		}
		label := strings.TrimSpace(record[0])
		profileURL := strings.TrimSpace(record[1])
		if !validProfileURL(profileURL) {
			continue
		}
		if label == "" {
			label = lastPathSegment(profileURL)
		}

		profiles = append(profiles, domain.CompetitorProfile{
			Label:      label,
			ProfileURL: profileURL,
		})
	}
	return profiles, nil
}

func validProfileURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func lastPathSegment(raw string) string {
	trimmed := strings.TrimRight(raw, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return trimmed
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil { return br }
	if rdr != '\uFEFF' { br.UnreadRune() }
	return br
}
