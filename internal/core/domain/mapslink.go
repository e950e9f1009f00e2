package domain

import (
	"strconv"
	"strings"
)

const mapsDirBase = "https://www.google.com/maps/dir/"

// MapsURL builds a Google Maps walking-directions deep link from an
// already-downsampled coordinate sequence. Points render as
// "lat,lon" (display order, flipped from storage order) using the
// shortest float form that round-trips. A single coordinate acts as
// both start and end; an empty sequence yields an empty string.
func MapsURL(coords []Coordinate) string {
	if len(coords) == 0 {
		return ""
	}

	if len(coords) == 1 {
		p := pointLabel(coords[0])
		return mapsDirBase + p + "/" + p + "/"
	}

	segments := make([]string, 0, len(coords))
	for _, c := range coords {
		segments = append(segments, pointLabel(c))
	}

	return mapsDirBase + strings.Join(segments, "/") + "/"
}

func pointLabel(c Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}
