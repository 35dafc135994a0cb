// Package shadow projects an inhabitant's shadow onto the ground line.
//
// A light source at angle θ above the horizon throws the shadow of an
// inhabitant of height h a distance h/tan(θ) along the ground. The result is
// an Interval whose Start never exceeds its End, whichever way the light
// falls, so callers that merge intervals need no special case for direction.
//
// When tan(θ) is exactly zero the light is horizontal and the shadow reaches
// +Inf. Infinite endpoints are valid and propagate through Len and Compare.
package shadow
