package circuit

import "errors"

// ErrNoWitnessAtDepth indicates no circuit built from at most the requested
// number of devices satisfies the query's outputs.
var ErrNoWitnessAtDepth = errors.New("circuit: no witness at requested depth")
