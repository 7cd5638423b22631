// Package resolve annotates VP entities, attributes and relationships with the
// systems that own them.
//
// Every resolver is a pure function over typed rows. Joins are left joins: each
// left row keeps its position and yields one output row per match on the right,
// in right-table order, or a single row when nothing matches. Null keys never
// match.
//
// Entity IDs are assigned from 1 and attribute IDs from 10000, both in join
// output order.
package resolve
