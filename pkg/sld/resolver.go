package sld

// resolveOneStep scans db[start:] in order for the first clause whose
// renamed head unifies with goal (substituted under env). On a match it
// returns the matched clause's body renamed at depth, the environment
// composed with the unifier, and the index one past the matched clause
// so a retry at the same depth can never re-select it.
//
// Renaming the body is deferred until after a successful unification:
// renaming is not free, and most clauses scanned for a given goal will
// not match.
func resolveOneStep(goal Term, env Env, db Database, start int, depth uint64) (body Body, retEnv Env, next int, ok bool) {
	substituted := goal.Subst(env)

	for i := start; i < db.Len(); i++ {
		clause := db.At(i)
		renamedHead := clause.Head.Rename(depth)

		unifier, matched := substituted.Unify(renamedHead)
		if !matched {
			continue
		}

		retEnv = unifier.Compose(env)
		body = clause.Body.Rename(depth)
		return body, retEnv, i + 1, true
	}

	return nil, nil, 0, false
}
