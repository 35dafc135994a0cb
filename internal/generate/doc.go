// Package generate writes synthetic flatland documents.
// Heights follow layered simplex noise so that neighbouring inhabitants
// have similar heights, which gives realistic runs of overlapping shadows.
package generate
