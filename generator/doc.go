// Package generator implements the seed-generator family: collaborators
// that hand the explanation program (package explain) unblocked candidate
// regions in some search order. Every variant satisfies the same
// capability set (package-level Generator interface): MustContain,
// GetSeed, BlockUp, BlockDown, BlockScore, Reset.
//
// Two families of implementation live here:
//
//   - smtlite.go / greedy.go: finite-domain backtracking and a min-heap
//     search, respectively. Neither needs a real constraint solver, since
//     a per-feature domain index already is the finite search space; both
//     keep blocking state in an explicit blockSet (blockset.go).
//   - maxsat.go / maxstrat.go / incrmaxsat.go: encode the same index
//     variables (l_i,j, u_i,j, I_i,j,k) the source specification's MaxSAT
//     encoding describes, as CNF (package formula, built by satenc.go's
//     shared encoder) solved by github.com/go-air/gini, the one
//     propositional SAT engine in this module's retrieved reference
//     corpus. gini has no native weighted MaxSAT, so each variant visits
//     candidate regions in decreasing geometric-volume order and asks
//     gini only to confirm satisfiability of the accumulated hard and
//     blocking clauses for that candidate — the first satisfiable
//     candidate is, by construction, the maximum-volume unblocked
//     region. maxstrat.go additionally bounds each search to a growing
//     stratum of the largest-span candidates, and incrmaxsat.go keeps one
//     persistent solver instance that blocking operations hard-extend
//     rather than rebuild.
package generator
