package rattrig

import "github.com/hupe1980/rattrig/numeric"

// ErrDivisionByZero is returned (wrapped) by Spread and SpreadLaw when an exact
// number type is asked to divide by a zero quadrance product.
//
// It is the same value as numeric.ErrDivisionByZero, so errors.Is works with
// either name.
var ErrDivisionByZero = numeric.ErrDivisionByZero
