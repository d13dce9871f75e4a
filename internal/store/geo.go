package store

import (
	"fmt"

	"github.com/orgatlas/orgatlas/internal/models"
)

// Geospatial and hierarchical predicate builders. All stored points carry
// SRID 4326 (WGS84); the predicates below must keep that assumption.

// pointExpr returns a geometry point expression at SRID 4326 consuming two
// placeholders starting at argIdx: longitude, then latitude.
func pointExpr(argIdx int) string {
	return fmt.Sprintf("ST_SetSRID(ST_MakePoint($%d, $%d), 4326)", argIdx, argIdx+1)
}

// radiusPredicate returns a geodesic distance-within condition on col,
// consuming three placeholders starting at argIdx: longitude, latitude,
// radius in meters. The geography casts make ST_DWithin measure true
// meters on the spheroid rather than planar degrees.
func radiusPredicate(col string, argIdx int) string {
	return fmt.Sprintf("ST_DWithin(%s::geography, %s::geography, $%d)", col, pointExpr(argIdx), argIdx+2)
}

// radiusArgs returns the placeholder values for radiusPredicate.
func radiusArgs(q models.RadiusQuery) []any {
	return []any{q.Center.Lon(), q.Center.Lat(), q.RadiusMeters}
}

// bboxPredicate returns an envelope-intersection condition on col,
// consuming four placeholders starting at argIdx in bboxArgs order.
func bboxPredicate(col string, argIdx int) string {
	return fmt.Sprintf(
		"ST_Intersects(%s, ST_MakeEnvelope($%d, $%d, $%d, $%d, 4326))",
		col, argIdx, argIdx+1, argIdx+2, argIdx+3,
	)
}

// bboxArgs returns the envelope corners for bboxPredicate. The envelope is
// built from (top_left.lon, bottom_right.lat) to (bottom_right.lon,
// top_left.lat): with north up, those are the southwest and northeast
// corners ST_MakeEnvelope expects. The pairing is fixed; corner order is
// taken from the named fields as supplied.
func bboxArgs(q models.BBoxQuery) []any {
	return []any{q.TopLeft.Lon(), q.BottomRight.Lat(), q.BottomRight.Lon(), q.TopLeft.Lat()}
}

// pathDescendantPredicate returns an ltree containment condition matching
// rows whose col equals the query path or lies below it in the tree.
// Structural containment, not string prefix: "food.fast" matches
// "food.fast.pizza" but not "food.fastfood". Consumes one placeholder.
func pathDescendantPredicate(col string, argIdx int) string {
	return fmt.Sprintf("%s <@ $%d::ltree", col, argIdx)
}
