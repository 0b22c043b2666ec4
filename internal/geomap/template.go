package geomap

const pageHTML = `<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
<style>
html, body, #map { height: 100%; margin: 0; }
.profile-glyph { border-radius: 50%; color: #fff; font: bold 16px/26px sans-serif; text-align: center; border: 2px solid #fff; box-shadow: 0 0 3px rgba(0,0,0,.5); }
table.profile th { text-align: left; padding-right: 8px; }
</style>
</head>
<body>
<div id="map" data-total="{{.Total}}"></div>
<script>
var map = L.map("map").setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer({{.TileURL}}, {maxZoom: 19, attribution: {{.TileAttr}}}).addTo(map);

var layers = {{.Layers}};
var overlays = {};
layers.forEach(function (layer) {
  var icon = L.divIcon({
    className: "marker-" + layer.style.icon,
    html: '<div class="profile-glyph" style="background:' + layer.style.color + '">' + layer.style.glyph + '</div>',
    iconSize: [30, 30],
    iconAnchor: [15, 15],
    popupAnchor: [0, -15]
  });
  var cluster = L.markerClusterGroup();
  L.geoJSON(layer.features, {
    pointToLayer: function (feature, latlng) {
      return L.marker(latlng, {icon: icon, title: feature.properties.first_name + " " + feature.properties.last_name});
    },
    onEachFeature: function (feature, marker) {
      marker.bindPopup(feature.properties.popup, {maxWidth: 350});
    }
  }).addTo(cluster);
  cluster.addTo(map);
  overlays[layer.name + " (" + layer.features.features.length + ")"] = cluster;
});
L.control.layers(null, overlays, {collapsed: false}).addTo(map);
</script>
</body>
</html>
`
