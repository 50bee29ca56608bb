// Package heuristic provides the four grid distance estimators recognized by
// the gridastar search kernel: manhattan, euclidean, chebyshev, and octile.
//
// What:
//
//   - Kind: a closed enum naming each estimator; Parse/String round-trip the
//     lowercase configuration names.
//   - Estimate(k, a, b): the pure, O(1) estimate of remaining cost from a to b.
//
// Why a closed enum:
//
//   - The estimator set is fixed and exhaustively enumerable, so a tagged
//     variant beats open polymorphism: dispatch stays a single switch, tests
//     can range over Kinds(), and a search run's configuration is a plain
//     value.
//
// Admissibility (never overestimates true remaining cost):
//
//   - Manhattan: admissible for 4-directional movement; overestimates once
//     diagonal steps exist.
//   - Euclidean: admissible under every movement model; always at or below
//     Manhattan, hence safe but less informed.
//   - Chebyshev: admissible for 8-directional movement with diagonal cost 1.
//   - Octile: the tight admissible bound for 8-directional movement with
//     diagonal cost sqrt(2), the cost model the kernel's expander uses.
//
// Pairing a heuristic with a movement model it was not derived for stays
// admissible in the combinations above but costs extra node expansions; the
// kernel deliberately does not police the pairing.
//
// Errors:
//
//   - ErrUnknownKind: Parse input outside the four names; also the panic
//     message when Estimate meets an undeclared Kind.
package heuristic
