package geo

// Point is an immutable (lon, lat) pair in degrees over the WGS-84
// sphere. Equality is bitwise on both fields.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func NewPoint(lon, lat float64) Point {
	return Point{
		Lon: lon,
		Lat: lat,
	}
}

func (p Point) GetLon() float64 {
	return p.Lon
}

func (p Point) GetLat() float64 {
	return p.Lat
}

func (p Point) Equal(q Point) bool {
	return p.Lon == q.Lon && p.Lat == q.Lat
}

// Trajectory is an ordered, finite, non-empty polyline. Order is
// semantic, consecutive duplicates are allowed until normalization.
type Trajectory []Point

func NewTrajectory(lons, lats []float64) Trajectory {
	points := make(Trajectory, len(lons))
	for i := range lons {
		points[i] = NewPoint(lons[i], lats[i])
	}
	return points
}
