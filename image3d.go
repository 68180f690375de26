// Package image3d draws a tessellated sphere as a wireframe (optionally filled) with a painter's algorithm: a quad mesh
// goes through an affine orientation and rotation, optional foreshortening, a depth sort, and a screen mapping, and the
// resulting 2D polygons are emitted in order to a Sink.
//
// Transforms are 4x4 matrices acting on column vectors (see AffineTransform). Interactive changes are expressed as
// Intents, folded into an InteractionState by ApplyIntent, and the Controller ties state, mesh, and Sink together for
// hosts. The sinks live in subpackages: ebitensink, rastersink, termsink, and displaysink.
package image3d
