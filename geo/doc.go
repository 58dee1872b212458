// Package geo provides the coordinate, polyline, and shape primitives
// shared by the spatialhash and querygraph packages: points, way
// geometry (polylines), bounding boxes, circles, and the Shape interface
// used for spatial-hash region queries.
//
// Distances are measured along the surface of the WGS-84 ellipsoid using
// the haversine approximation (good enough for road-network edge lengths;
// this package makes no claim to geodesic precision beyond that).
package geo
