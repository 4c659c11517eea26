package ppm

// Tuning constants for the model, the fixed-point helpers and the range
// coder. All of them are part of the on-disk format: changing any one
// makes streams produced by a different build unreadable.
const (
	ariPBits  = 12       // width of probabilities fed to the coder
	ariPScale = 1 << ariPBits

	ppmPBits  = 22 // width of the model's probability field
	ppmPScale = 1 << ppmPBits
	ppmCBits  = 10 // width of the model's count field
	ppmCLimit = 1 << ppmCBits
	ppmCScale = 32        // count unit, i.e. weight of one observation
	ppmPStart = ppmPScale / 2
	ppmCStart = ppmCScale * 12  // initial count of the 256 bootstrap nodes
	ppmCInh   = ppmCScale * 3 / 2 // initial count of an inherited node
	ppmCInc   = ppmCScale         // count increment per observation

	divisorBits    = 10 // index width of the reciprocal table
	divisorLimit   = 1 << divisorBits
	reciprocalBits = 15 // width of each reciprocal table entry

	kTopValue = 1 << 24 // range coder renormalisation threshold
)
