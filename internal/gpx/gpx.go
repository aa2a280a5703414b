// Package gpx reads trackpoints from GPX 1.1 files.
package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sailhq/windward/schema"
)

// gpxFile is the top-level document element.
type gpxFile struct {
	XMLName xml.Name `xml:"gpx"`
	Creator string   `xml:"creator,attr"`
	Version string   `xml:"version,attr"`
	Trks    []trk    `xml:"trk"`
}

// trk is a single track with one or more segments.
type trk struct {
	Name    string   `xml:"name"`
	Trksegs []trkseg `xml:"trkseg"`
}

// trkseg is a contiguous run of trackpoints.
type trkseg struct {
	Trkpts []trkpt `xml:"trkpt"`
}

// trkpt is a single recorded fix. Time is kept as a string so that points
// without a timestamp can be told apart from zero timestamps.
type trkpt struct {
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Ele  *float64 `xml:"ele"`
	Time string   `xml:"time"`
}

// Track is the parsed result: the flattened point sequence plus the
// file-level metadata worth surfacing.
type Track struct {
	Name    string
	Creator string
	Points  []schema.TrackPoint
	Skipped int // Points dropped for missing or non-increasing timestamps
}

// ParseFile reads and parses the GPX file at the given path.
func ParseFile(path string) (*Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GPX file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Parse(file)
}

// Parse reads all trackpoints from the reader, flattening tracks and
// segments into one time-ordered sequence.
//
// Points without a timestamp are dropped, as are points whose timestamp
// does not strictly increase over the previous kept point. Downstream
// course math divides by time deltas, so the sequence must be monotonic.
func Parse(r io.Reader) (*Track, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read GPX data: %w", err)
	}

	var doc gpxFile
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse GPX XML: %w", err)
	}

	track := &Track{Creator: doc.Creator}
	if len(doc.Trks) > 0 {
		track.Name = doc.Trks[0].Name
	}

	var lastTime time.Time
	for _, t := range doc.Trks {
		for _, seg := range t.Trksegs {
			for _, pt := range seg.Trkpts {
				if pt.Time == "" {
					track.Skipped++
					continue
				}
				ts, err := time.Parse(time.RFC3339, pt.Time)
				if err != nil {
					return nil, fmt.Errorf("invalid timestamp %q: %w", pt.Time, err)
				}
				if len(track.Points) > 0 && !ts.After(lastTime) {
					track.Skipped++
					continue
				}
				track.Points = append(track.Points, schema.TrackPoint{
					Lat:       pt.Lat,
					Lon:       pt.Lon,
					Time:      ts,
					Elevation: pt.Ele,
				})
				lastTime = ts
			}
		}
	}

	return track, nil
}
