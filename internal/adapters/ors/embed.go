package ors

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/stridelabs/albumwalk/internal/core/domain"
)

// leafletDocument is a self-contained interactive map: Leaflet from a
// CDN, the route drawn as a polyline, centered on the starting point.
var leafletDocument = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var route = {{.Route}};
var map = L.map('map').setView(route[0], 14);
L.tileLayer('https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png', {
	attribution: '&copy; OpenStreetMap contributors &copy; CARTO'
}).addTo(map);
var line = L.polyline(route, {color: '#2a6f4e', weight: 4}).addTo(map);
L.marker(route[0]).addTo(map);
map.fitBounds(line.getBounds());
</script>
</body>
</html>
`))

// buildLeafletMap renders the route geometry as a standalone HTML map
// document. Coordinates flip to Leaflet's [lat, lon] order.
func buildLeafletMap(geometry []domain.Coordinate) (string, error) {
	if len(geometry) == 0 {
		return "", errors.New("empty route geometry")
	}

	points := make([][2]float64, len(geometry))
	for i, c := range geometry {
		points[i] = [2]float64{c.Lat, c.Lon}
	}

	encoded, err := json.Marshal(points)
	if err != nil {
		return "", fmt.Errorf("encode route points: %w", err)
	}

	var out strings.Builder
	data := struct {
		Route template.JS
	}{
		Route: template.JS(encoded),
	}
	if err := leafletDocument.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render map document: %w", err)
	}

	return out.String(), nil
}
