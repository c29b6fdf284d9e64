package formula

// Clause is a disjunction of literals.
type Clause []Lit

// CNF is a conjunction of clauses: an empty CNF is trivially true; a CNF
// containing an empty Clause is unsatisfiable.
type CNF []Clause

// ToCNF converts f into an equivalent formula in conjunctive normal form,
// by first rewriting Implies/Iff/EqualsOne away and pushing negations down
// to literals (negation-normal form), then distributing Or over And in the
// usual way. The result may be exponentially larger than f; no Tseitin
// auxiliary variables are introduced, matching the "standard distribution"
// construction this package is specified to provide.
func ToCNF(f Formula) CNF {
	nnf := toNNF(f, false)
	return convert(nnf)
}

// toNNF rewrites f into negation-normal form: only Var, And, and Or nodes
// remain, with every negation pushed down to a literal. neg tracks whether
// f is read under an odd number of enclosing Not/de Morgan flips.
func toNNF(f Formula, neg bool) Formula {
	switch v := f.(type) {
	case Var:
		if neg {
			return Var(Lit(v).Negate())
		}
		return v
	case Not:
		return toNNF(v.X, !neg)
	case And:
		xs := mapNNF(v.Xs, neg)
		if neg {
			return Or{Xs: xs}
		}
		return And{Xs: xs}
	case Or:
		xs := mapNNF(v.Xs, neg)
		if neg {
			return And{Xs: xs}
		}
		return Or{Xs: xs}
	case Implies:
		return toNNF(Or{Xs: []Formula{Not{X: v.A}, v.B}}, neg)
	case Iff:
		return toNNF(And{Xs: []Formula{
			Implies{A: v.A, B: v.B},
			Implies{A: v.B, B: v.A},
		}}, neg)
	case EqualsOne:
		return toNNF(desugarEqualsOne(v), neg)
	default:
		panic("formula: unknown node type")
	}
}

func mapNNF(xs []Formula, neg bool) []Formula {
	out := make([]Formula, len(xs))
	for i, x := range xs {
		out[i] = toNNF(x, neg)
	}
	return out
}

// desugarEqualsOne rewrites "exactly one of Xs" as (at least one) AND
// (pairwise at most one).
func desugarEqualsOne(e EqualsOne) Formula {
	atLeast := make([]Formula, len(e.Xs))
	for i, l := range e.Xs {
		atLeast[i] = Var(l)
	}
	xs := []Formula{Or{Xs: atLeast}}
	for i := 0; i < len(e.Xs); i++ {
		for j := i + 1; j < len(e.Xs); j++ {
			xs = append(xs, Or{Xs: []Formula{
				Not{X: Var(e.Xs[i])},
				Not{X: Var(e.Xs[j])},
			}})
		}
	}
	return And{Xs: xs}
}

// convert distributes an NNF formula (Var/And/Or only) into CNF.
func convert(f Formula) CNF {
	switch v := f.(type) {
	case Var:
		return CNF{Clause{Lit(v)}}
	case And:
		if len(v.Xs) == 0 {
			return CNF{}
		}
		var out CNF
		for _, x := range v.Xs {
			out = append(out, convert(x)...)
		}
		return out
	case Or:
		if len(v.Xs) == 0 {
			return CNF{Clause{}}
		}
		acc := convert(v.Xs[0])
		for _, x := range v.Xs[1:] {
			acc = distributeOr(acc, convert(x))
		}
		return acc
	default:
		panic("formula: convert called on non-NNF node")
	}
}

// distributeOr combines two CNFs under disjunction: (a1 & a2 & ...) | (b1 &
// b2 & ...) = (a1|b1) & (a1|b2) & ... — the cross product of clauses.
func distributeOr(a, b CNF) CNF {
	out := make(CNF, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			combined := make(Clause, 0, len(ca)+len(cb))
			combined = append(combined, ca...)
			combined = append(combined, cb...)
			out = append(out, combined)
		}
	}
	return out
}
