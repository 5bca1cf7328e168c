package validation

func (v *Validator) forEachRule(f func(stashed stashedRule) bool) bool {
	allOk := true
	for _, stashed := range v.rules {
		if !f(stashed) {
			allOk = false
		}
	}

	return allOk
}

func (v *Validator) forEachEdgeRule(f func(stashed stashedRule) bool) bool {
	return v.forEachRule(func(stashed stashedRule) bool {
		if stashed.rule.Amount == 0 {
			return true
		}

		return f(stashed)
	})
}
